package state

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
)

// OnboardCache is a file-backed "onboarding previously completed" flag per
// user id. It only bridges the gap between local completion and remote
// confirmation: a page refresh before the settings save lands must not send
// the user back through the wizard. It is not a source of truth for anything
// else.
type OnboardCache struct {
	mu    sync.Mutex
	path  string
	flags map[string]bool
}

func NewOnboardCache(path string) *OnboardCache {
	c := &OnboardCache{path: path, flags: map[string]bool{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("onboard cache unreadable, starting empty", "path", path, "error", err)
		}
		return c
	}
	if err := json.Unmarshal(raw, &c.flags); err != nil {
		slog.Warn("onboard cache corrupt, starting empty", "path", path, "error", err)
		c.flags = map[string]bool{}
	}
	return c
}

func (c *OnboardCache) IsOnboarded(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flags[userID]
}

// MarkOnboarded records completion and persists best-effort; a write failure
// is logged and forgotten, the in-memory flag still holds for this process.
func (c *OnboardCache) MarkOnboarded(userID string) {
	c.mu.Lock()
	c.flags[userID] = true
	raw, err := json.Marshal(c.flags)
	path := c.path
	c.mu.Unlock()

	if err != nil {
		return
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		slog.Error("failed to persist onboard cache", "path", path, "error", err)
	}
}
