package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultExercisesReserveSeedIDs(t *testing.T) {
	exercises := DefaultExercises()
	require.Len(t, exercises, 8)
	for i, ex := range exercises {
		require.Equal(t, strconv.Itoa(i+1), ex.ID)
		require.False(t, ex.IsCustom, "seed exercise %s must not be custom", ex.ID)
		require.NotEmpty(t, ex.Name)
		require.Positive(t, ex.DefaultSets)
		require.Positive(t, ex.DefaultReps)
	}
}

func TestDefaultHabitsStartUncompleted(t *testing.T) {
	habits := DefaultHabits()
	require.Len(t, habits, 4)
	for _, h := range habits {
		require.Zero(t, h.StreakCount)
		require.False(t, h.CompletedToday)
		require.Empty(t, h.LastCompletedAt)
	}
}

func TestDefaultTasbihSet(t *testing.T) {
	entries := DefaultTasbih()
	require.Len(t, entries, 4)
	for _, e := range entries {
		require.Zero(t, e.Count)
		require.Positive(t, e.Target)
	}
}

func TestDefaultUserDataHasSeededExam(t *testing.T) {
	data := DefaultUserData()
	require.Len(t, data.Exams, 1)
	require.Equal(t, SeedExamID, data.Exams[0].ID)
	require.Equal(t, "2026-04-21", data.Exams[0].Date)
	require.NotNil(t, data.DailyHabits)
	require.NotNil(t, data.DailyPrayers)
}
