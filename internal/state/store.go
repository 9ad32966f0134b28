// Package state holds the per-user reactive snapshot: one mutable copy of
// every collection, mutated synchronously and pushed to the remote store on a
// fire-and-forget basis. Handlers read the post-mutation snapshot
// immediately; the remote store catches up eventually or not at all.
package state

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

// RemoteStore is the sync adapter contract. LoadAll returns every collection
// (seeded defaults where empty); SaveAll idempotently replaces remote state
// with the supplied snapshot. SaveAll failures are the caller's to log and
// swallow.
type RemoteStore interface {
	LoadAll(ctx context.Context, userID string) (*domain.UserData, error)
	SaveAll(ctx context.Context, userID string, data *domain.UserData, seq uint64) error
}

// Store owns one user's snapshot. All access goes through its methods; each
// mutator applies as a single atomic replacement of the touched slice or map,
// never an interleaved partial write.
//
// Mutators follow copy-on-write: collections are rebuilt, never edited in
// place. That makes the struct-level copy handed to a sync goroutine stable
// without deep cloning.
type Store struct {
	mu sync.Mutex

	userID      string
	data        *domain.UserData
	session     domain.ActiveWorkoutSession
	schedule    []domain.WorkoutSchedule
	isLoading   bool
	isSynced    bool
	isOnboarded bool

	remote  RemoteStore
	onboard *OnboardCache
	now     func() time.Time

	// seq numbers each SaveAll so a hardening pass could discard
	// out-of-order completions. Ordering is not enforced today: the sync
	// strategy is last-write-wins by arrival.
	seq atomic.Uint64
}

func NewStore(userID string, remote RemoteStore, onboard *OnboardCache) *Store {
	return &Store{
		userID:  userID,
		data:    domain.DefaultUserData(),
		remote:  remote,
		onboard: onboard,
		now:     time.Now,
	}
}

// UserID returns the owner of this snapshot.
func (s *Store) UserID() string { return s.userID }

// Snapshot returns a copy of the current collections. Because mutators are
// copy-on-write, the returned value stays consistent even while mutators run.
func (s *Store) Snapshot() domain.UserData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.data
}

// Flags reports the session scalars: loading, synced and onboarded.
func (s *Store) Flags() (isLoading, isSynced, isOnboarded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading, s.isSynced, s.isOnboarded
}

// Load fetches every collection from the remote adapter, applies the
// derivation rules and replaces the snapshot atomically. On failure the
// previous snapshot (defaults on first load) stays in place.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.isLoading = true
	s.mu.Unlock()

	data, err := s.remote.LoadAll(ctx, s.userID)
	if err != nil {
		slog.Error("load failed", "action", "load", "user_id", s.userID, "error", err)
		s.mu.Lock()
		s.isLoading = false
		s.mu.Unlock()
		return err
	}

	now := s.now()
	todayKey := timeutil.DayKey(now)

	// Accept day keys in either canonical or ISO form and index everything
	// by the canonical key.
	normalizedHabits := make(map[string]domain.DailyHabits, len(data.DailyHabits))
	for key, day := range data.DailyHabits {
		src := day.Date
		if src == "" {
			src = key
		}
		normalized := timeutil.NormalizeDayKey(src)
		if day.Completions == nil {
			day.Completions = map[string]domain.HabitCompletion{}
		}
		normalizedHabits[normalized] = day
	}
	if _, ok := normalizedHabits[todayKey]; !ok {
		normalizedHabits[todayKey] = domain.DailyHabits{
			Date:        timeutil.ISODate(now),
			Completions: map[string]domain.HabitCompletion{},
		}
	}
	data.DailyHabits = normalizedHabits

	normalizedPrayers := make(map[string]domain.DailyPrayers, len(data.DailyPrayers))
	for key, day := range data.DailyPrayers {
		normalizedPrayers[timeutil.NormalizeDayKey(key)] = day
	}
	if _, ok := normalizedPrayers[todayKey]; !ok {
		normalizedPrayers[todayKey] = domain.DailyPrayers{Date: todayKey}
	}
	data.DailyPrayers = normalizedPrayers

	// completedToday is a pure projection of today's ledger, never trusted
	// from storage.
	habits := make([]domain.Habit, len(data.Habits))
	for i, h := range data.Habits {
		_, done := data.DailyHabits[todayKey].Completions[h.ID]
		h.CompletedToday = done
		if done {
			h.LastCompletedAt = todayKey
		}
		habits[i] = h
	}
	data.Habits = habits

	onboarded := s.onboard.IsOnboarded(s.userID) ||
		(data.UserSettings.Name != "" && data.UserSettings.MainGoal != "")

	s.mu.Lock()
	s.data = data
	s.isLoading = false
	s.isSynced = true
	s.isOnboarded = onboarded
	s.mu.Unlock()

	slog.Info("user data loaded", "user_id", s.userID, "onboarded", onboarded)
	return nil
}

// syncAsync snapshots the collections and pushes them remotely without
// blocking the caller. Failures are logged and otherwise invisible: no retry,
// no queue, no user-facing error.
func (s *Store) syncAsync() {
	s.mu.Lock()
	snapshot := *s.data
	userID := s.userID
	// Numbered under the same lock that takes the snapshot, so a higher
	// sequence always carries a newer snapshot.
	seq := s.seq.Add(1)
	s.mu.Unlock()

	go func() {
		if err := s.remote.SaveAll(context.Background(), userID, &snapshot, seq); err != nil {
			slog.Error("sync failed", "action", "save_all", "user_id", userID, "sync_seq", seq, "error", err)
		}
	}()
}

// SettingsUpdate is a partial settings mutation; nil fields are untouched.
type SettingsUpdate struct {
	Name              *string       `json:"name"`
	City              *string       `json:"city"`
	Country           *string       `json:"country"`
	Latitude          *float64      `json:"latitude"`
	Longitude         *float64      `json:"longitude"`
	MainGoal          *string       `json:"mainGoal"`
	SleepTarget       *float64      `json:"sleepTarget"`
	Theme             *domain.Theme `json:"theme"`
	CalculationMethod *int          `json:"calculationMethod"`
}

// SetUserSettings merges the update into the settings and re-evaluates the
// onboarding gate: once name and mainGoal are both non-empty the user is
// onboarded, and stays onboarded even if a field is later cleared. Completion
// is cached locally so a refresh before remote confirmation does not regress
// the user back into onboarding.
func (s *Store) SetUserSettings(u SettingsUpdate) domain.UserSettings {
	s.mu.Lock()
	next := s.data.UserSettings
	if u.Name != nil {
		next.Name = *u.Name
	}
	if u.City != nil {
		next.City = *u.City
	}
	if u.Country != nil {
		next.Country = *u.Country
	}
	if u.Latitude != nil {
		next.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		next.Longitude = *u.Longitude
	}
	if u.MainGoal != nil {
		next.MainGoal = *u.MainGoal
	}
	if u.SleepTarget != nil {
		next.SleepTarget = *u.SleepTarget
	}
	if u.Theme != nil {
		next.Theme = *u.Theme
	}
	if u.CalculationMethod != nil {
		next.CalculationMethod = *u.CalculationMethod
	}

	data := *s.data
	data.UserSettings = next
	s.data = &data

	completed := next.Name != "" && next.MainGoal != ""
	s.isOnboarded = s.isOnboarded || completed
	s.mu.Unlock()

	if completed {
		s.onboard.MarkOnboarded(s.userID)
	}
	s.syncAsync()
	return next
}

// CompleteOnboarding force-marks the user onboarded, mirroring the explicit
// wizard completion action.
func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	s.isOnboarded = true
	s.mu.Unlock()
	s.onboard.MarkOnboarded(s.userID)
}
