package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/state"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type SettingsHandler struct {
	manager *state.Manager
}

func NewSettingsHandler(manager *state.Manager) *SettingsHandler {
	return &SettingsHandler{manager: manager}
}

// State returns the full snapshot plus the store flags, the app shell's
// bootstrap payload.
func (h *SettingsHandler) State(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	isLoading, isSynced, isOnboarded := store.Flags()
	return c.JSON(fiber.Map{
		"data":        store.Snapshot(),
		"isLoading":   isLoading,
		"isSynced":    isSynced,
		"isOnboarded": isOnboarded,
	})
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.SettingsUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	settings := store.SetUserSettings(req)
	_, _, isOnboarded := store.Flags()
	return c.JSON(fiber.Map{
		"userSettings": settings,
		"isOnboarded":  isOnboarded,
	})
}

func (h *SettingsHandler) CompleteOnboarding(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.CompleteOnboarding()
	return c.JSON(fiber.Map{"isOnboarded": true})
}

// Greeting returns the time-of-day salutation for the dashboard header.
func (h *SettingsHandler) Greeting(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	now := time.Now()
	name := store.Snapshot().UserSettings.Name
	return c.JSON(fiber.Map{
		"greeting":  timeutil.Greeting(name, now.Hour()),
		"timeOfDay": timeutil.TimeOfDay(now.Hour()),
	})
}
