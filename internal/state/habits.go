package state

import (
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

func (s *Store) AddHabit(h domain.Habit) {
	s.mu.Lock()
	data := *s.data
	data.Habits = append(append([]domain.Habit{}, s.data.Habits...), h)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// HabitUpdate is a partial habit mutation. Streak fields are managed by
// ToggleHabit and are not updatable directly.
type HabitUpdate struct {
	Name         *string `json:"name"`
	Icon         *string `json:"icon"`
	FrozenStreak *bool   `json:"frozenStreak"`
}

func (s *Store) UpdateHabit(id string, u HabitUpdate) bool {
	s.mu.Lock()
	found := false
	habits := make([]domain.Habit, len(s.data.Habits))
	for i, h := range s.data.Habits {
		if h.ID == id {
			found = true
			if u.Name != nil {
				h.Name = *u.Name
			}
			if u.Icon != nil {
				h.Icon = *u.Icon
			}
			if u.FrozenStreak != nil {
				h.FrozenStreak = *u.FrozenStreak
			}
		}
		habits[i] = h
	}
	data := *s.data
	data.Habits = habits
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return found
}

func (s *Store) DeleteHabit(id string) {
	s.mu.Lock()
	habits := make([]domain.Habit, 0, len(s.data.Habits))
	for _, h := range s.data.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	data := *s.data
	data.Habits = habits
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// ToggleHabit flips a habit's completion for today. Completing increments the
// streak, stamps today's day key and records a ledger entry; toggling again
// the same day reverses all of it (streak floored at zero, ledger entry
// removed). Toggling twice is an exact no-op.
func (s *Store) ToggleHabit(id string) bool {
	now := s.now()
	todayKey := timeutil.DayKey(now)

	s.mu.Lock()
	found := false

	day, ok := s.data.DailyHabits[todayKey]
	if !ok {
		day = domain.DailyHabits{
			Date:        timeutil.ISODate(now),
			Completions: map[string]domain.HabitCompletion{},
		}
	}
	_, completedToday := day.Completions[id]

	habits := make([]domain.Habit, len(s.data.Habits))
	for i, h := range s.data.Habits {
		if h.ID == id {
			found = true
			if completedToday || h.LastCompletedAt == todayKey {
				h.CompletedToday = false
				h.StreakCount--
				if h.StreakCount < 0 {
					h.StreakCount = 0
				}
				h.LastCompletedAt = ""
			} else {
				h.CompletedToday = true
				h.StreakCount++
				h.LastCompletedAt = todayKey
			}
		}
		habits[i] = h
	}

	if !found {
		s.mu.Unlock()
		return false
	}

	completions := make(map[string]domain.HabitCompletion, len(day.Completions)+1)
	for k, v := range day.Completions {
		completions[k] = v
	}
	if completedToday {
		delete(completions, id)
	} else {
		name := ""
		for _, h := range s.data.Habits {
			if h.ID == id {
				name = h.Name
				break
			}
		}
		completions[id] = domain.HabitCompletion{
			HabitID:     id,
			HabitName:   name,
			CompletedAt: now.Format(time.RFC3339),
		}
	}

	dailyHabits := make(map[string]domain.DailyHabits, len(s.data.DailyHabits)+1)
	for k, v := range s.data.DailyHabits {
		dailyHabits[k] = v
	}
	dailyHabits[todayKey] = domain.DailyHabits{Date: timeutil.ISODate(now), Completions: completions}

	data := *s.data
	data.Habits = habits
	data.DailyHabits = dailyHabits
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return true
}

// ToggleHabitCompletion flips a habit's ledger entry for a given day without
// touching the streak. The history calendar uses it to amend past days;
// streak bookkeeping for today stays with ToggleHabit. An empty or
// unparseable date means today.
func (s *Store) ToggleHabitCompletion(id, date string) {
	now := s.now()
	day := now
	if t, ok := timeutil.ParseDay(date); ok {
		day = t
	}
	dayKey := timeutil.DayKey(day)

	s.mu.Lock()
	bucket, ok := s.data.DailyHabits[dayKey]
	if !ok {
		bucket = domain.DailyHabits{
			Date:        timeutil.ISODate(day),
			Completions: map[string]domain.HabitCompletion{},
		}
	}

	completions := make(map[string]domain.HabitCompletion, len(bucket.Completions)+1)
	for k, v := range bucket.Completions {
		completions[k] = v
	}
	if _, done := completions[id]; done {
		delete(completions, id)
	} else {
		name := ""
		for _, h := range s.data.Habits {
			if h.ID == id {
				name = h.Name
				break
			}
		}
		completions[id] = domain.HabitCompletion{
			HabitID:     id,
			HabitName:   name,
			CompletedAt: now.Format(time.RFC3339),
		}
	}

	dailyHabits := make(map[string]domain.DailyHabits, len(s.data.DailyHabits)+1)
	for k, v := range s.data.DailyHabits {
		dailyHabits[k] = v
	}
	dailyHabits[dayKey] = domain.DailyHabits{Date: bucket.Date, Completions: completions}

	data := *s.data
	data.DailyHabits = dailyHabits
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}
