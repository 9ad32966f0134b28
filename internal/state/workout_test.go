package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

func TestStartWhileActiveResumes(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	first := s.StartWorkoutSession("Push Day")
	require.True(t, first.IsActive)
	require.Equal(t, "Push Day", first.WorkoutName)
	require.Equal(t, testNow.UnixMilli(), first.StartedAtEpochMs)

	second := s.StartWorkoutSession("Leg Day")
	require.Equal(t, "Push Day", second.WorkoutName)
	require.Equal(t, first.StartedAtEpochMs, second.StartedAtEpochMs)
}

func TestAddSessionExerciseExpandsDefaultSets(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	ex := domain.Exercise{ID: "1", Name: "Push-ups", DefaultSets: 3, DefaultReps: 15}

	require.False(t, s.AddSessionExercise(ex), "idle session must reject entries")

	s.StartWorkoutSession("Push Day")
	require.True(t, s.AddSessionExercise(ex))

	sess := s.WorkoutSession()
	require.Len(t, sess.Entries, 1)
	require.Equal(t, "Push-ups", sess.Entries[0].ExerciseName)
	require.Len(t, sess.Entries[0].Sets, 3)
	for i, set := range sess.Entries[0].Sets {
		require.Equal(t, i+1, set.SetNumber)
		require.Equal(t, 15, set.Reps)
		require.Equal(t, "kg", set.Unit)
		require.False(t, set.Completed)
	}
}

func TestUpdateSessionSet(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.StartWorkoutSession("Push Day")
	s.AddSessionExercise(domain.Exercise{ID: "1", Name: "Bench", DefaultSets: 2, DefaultReps: 10})

	reps := 8
	weight := 60.0
	completed := true
	require.True(t, s.UpdateSessionSet(0, 1, SetUpdate{Reps: &reps, Weight: &weight, Completed: &completed}))

	sess := s.WorkoutSession()
	require.Equal(t, 8, sess.Entries[0].Sets[1].Reps)
	require.Equal(t, 60.0, sess.Entries[0].Sets[1].Weight)
	require.True(t, sess.Entries[0].Sets[1].Completed)
	// Sibling set untouched.
	require.Equal(t, 10, sess.Entries[0].Sets[0].Reps)

	require.False(t, s.UpdateSessionSet(5, 0, SetUpdate{Reps: &reps}))
	require.False(t, s.UpdateSessionSet(0, 9, SetUpdate{Reps: &reps}))
}

func TestFinishSessionAppendsLogAndRoundsDuration(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.StartWorkoutSession("Push Day")
	s.AddSessionExercise(domain.Exercise{ID: "1", Name: "Bench", DefaultSets: 1, DefaultReps: 10})

	finish := testNow.Add(45*time.Minute + 31*time.Second)
	s.now = func() time.Time { return finish }

	log, ok := s.FinishWorkoutSession()
	require.True(t, ok)
	require.Equal(t, 46, log.DurationMinutes)
	require.Equal(t, "Push Day", log.Name)
	require.Equal(t, timeutil.ISODate(finish), log.Date)
	require.Len(t, log.Entries, 1)

	snap := s.Snapshot()
	require.Len(t, snap.WorkoutLogs, 1)
	require.Equal(t, log.ID, snap.WorkoutLogs[0].ID)
	require.False(t, s.WorkoutSession().IsActive)

	_, ok = s.FinishWorkoutSession()
	require.False(t, ok, "finishing twice must fail")
}

func TestFinishSessionRoundsDown(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.StartWorkoutSession("Quick")
	s.now = func() time.Time { return testNow.Add(45*time.Minute + 29*time.Second) }

	log, ok := s.FinishWorkoutSession()
	require.True(t, ok)
	require.Equal(t, 45, log.DurationMinutes)
}

func TestDiscardSessionLeavesNoLog(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.StartWorkoutSession("Push Day")
	s.AddSessionExercise(domain.Exercise{ID: "1", Name: "Bench", DefaultSets: 1, DefaultReps: 10})
	s.DiscardWorkoutSession()

	require.False(t, s.WorkoutSession().IsActive)
	require.Empty(t, s.Snapshot().WorkoutLogs)

	// Discarding while idle is harmless.
	s.DiscardWorkoutSession()
	require.False(t, s.WorkoutSession().IsActive)
}

func TestSetWorkoutScheduleReplacesPlanWithoutSyncing(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	require.Empty(t, s.WorkoutSchedule())

	plan := []domain.WorkoutSchedule{
		{DayOfWeek: 1, Name: "Push Day", Exercises: []string{"1", "2"}},
		{DayOfWeek: 4, Name: "Leg Day", Exercises: []string{"7"}},
	}
	s.SetWorkoutSchedule(plan)

	got := s.WorkoutSchedule()
	require.Equal(t, plan, got)

	// The returned slice is a copy; editing it does not leak into the store.
	got[0].Name = "Pull Day"
	require.Equal(t, "Push Day", s.WorkoutSchedule()[0].Name)

	// The plan is session-local. Only the task mutation reaches the remote.
	s.AddTask(domain.Task{ID: "t1", Title: "one"})
	require.Eventually(t, func() bool {
		return remote.saveCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.SetWorkoutSchedule(nil)
	require.Empty(t, s.WorkoutSchedule())
}
