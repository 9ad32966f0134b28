package state

import (
	"strconv"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

// Active workout session: an ephemeral singleton with an Idle -> Active ->
// Idle lifecycle. Finish appends a WorkoutLog; discard does not. It lives
// beside the durable collections but is never synced remotely.

// WorkoutSession returns a copy of the current session state.
func (s *Store) WorkoutSession() domain.ActiveWorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session
	sess.Entries = append([]domain.WorkoutLogEntry{}, s.session.Entries...)
	return sess
}

// StartWorkoutSession moves Idle -> Active. Starting while already active
// resumes the running session unchanged.
func (s *Store) StartWorkoutSession(name string) domain.ActiveWorkoutSession {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.IsActive {
		return s.session
	}
	s.session = domain.ActiveWorkoutSession{
		IsActive:         true,
		WorkoutName:      name,
		Entries:          []domain.WorkoutLogEntry{},
		StartedAtEpochMs: now.UnixMilli(),
	}
	return s.session
}

// AddSessionExercise appends an entry for the exercise, pre-filled with its
// default set count and reps. No-op while idle.
func (s *Store) AddSessionExercise(ex domain.Exercise) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.IsActive {
		return false
	}
	sets := make([]domain.WorkoutSet, ex.DefaultSets)
	for i := range sets {
		sets[i] = domain.WorkoutSet{
			SetNumber: i + 1,
			Reps:      ex.DefaultReps,
			Unit:      "kg",
		}
	}
	entries := append([]domain.WorkoutLogEntry{}, s.session.Entries...)
	entries = append(entries, domain.WorkoutLogEntry{
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Sets:         sets,
	})
	s.session.Entries = entries
	return true
}

// SetUpdate is a partial mutation of one set within a session entry.
type SetUpdate struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Unit      *string  `json:"unit"`
	Completed *bool    `json:"completed"`
}

// UpdateSessionSet edits one set of one entry in place. Out-of-range indexes
// and idle sessions are ignored.
func (s *Store) UpdateSessionSet(entryIndex, setIndex int, u SetUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.IsActive || entryIndex < 0 || entryIndex >= len(s.session.Entries) {
		return false
	}
	entry := s.session.Entries[entryIndex]
	if setIndex < 0 || setIndex >= len(entry.Sets) {
		return false
	}

	sets := append([]domain.WorkoutSet{}, entry.Sets...)
	set := sets[setIndex]
	if u.Reps != nil {
		set.Reps = *u.Reps
	}
	if u.Weight != nil {
		set.Weight = *u.Weight
	}
	if u.Unit != nil {
		set.Unit = *u.Unit
	}
	if u.Completed != nil {
		set.Completed = *u.Completed
	}
	sets[setIndex] = set

	entries := append([]domain.WorkoutLogEntry{}, s.session.Entries...)
	entry.Sets = sets
	entries[entryIndex] = entry
	s.session.Entries = entries
	return true
}

// FinishWorkoutSession moves Active -> Idle, converting the session into a
// WorkoutLog whose duration runs from the start instant to now. Returns the
// appended log, or ok false when idle.
func (s *Store) FinishWorkoutSession() (domain.WorkoutLog, bool) {
	now := s.now()

	s.mu.Lock()
	if !s.session.IsActive {
		s.mu.Unlock()
		return domain.WorkoutLog{}, false
	}

	elapsedMs := now.UnixMilli() - s.session.StartedAtEpochMs
	minutes := int((elapsedMs + 30_000) / 60_000)
	log := domain.WorkoutLog{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Date:            timeutil.ISODate(now),
		Name:            s.session.WorkoutName,
		Entries:         s.session.Entries,
		DurationMinutes: minutes,
	}

	data := *s.data
	data.WorkoutLogs = append(append([]domain.WorkoutLog{}, s.data.WorkoutLogs...), log)
	s.data = &data
	s.session = domain.ActiveWorkoutSession{}
	s.mu.Unlock()

	s.syncAsync()
	return log, true
}

// DiscardWorkoutSession moves Active -> Idle with no side effect.
func (s *Store) DiscardWorkoutSession() {
	s.mu.Lock()
	s.session = domain.ActiveWorkoutSession{}
	s.mu.Unlock()
}

// WorkoutSchedule returns a copy of the weekly workout plan.
func (s *Store) WorkoutSchedule() []domain.WorkoutSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WorkoutSchedule{}, s.schedule...)
}

// SetWorkoutSchedule replaces the weekly workout plan. Like the active
// session the plan lives beside the durable collections and is not synced.
func (s *Store) SetWorkoutSchedule(plan []domain.WorkoutSchedule) {
	s.mu.Lock()
	s.schedule = append([]domain.WorkoutSchedule{}, plan...)
	s.mu.Unlock()
}
