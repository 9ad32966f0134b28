package state

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

// fakeRemote records every SaveAll and serves a canned LoadAll.
type fakeRemote struct {
	mu         sync.Mutex
	loadData   *domain.UserData
	loadErr    error
	loads      int
	saves      []uint64
	taskCounts map[uint64]int
}

func (f *fakeRemote) LoadAll(_ context.Context, _ string) (*domain.UserData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.loadData != nil {
		data := *f.loadData
		return &data, nil
	}
	return domain.DefaultUserData(), nil
}

func (f *fakeRemote) SaveAll(_ context.Context, _ string, data *domain.UserData, seq uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, seq)
	if f.taskCounts == nil {
		f.taskCounts = map[uint64]int{}
	}
	f.taskCounts[seq] = len(data.Tasks)
	return nil
}

func (f *fakeRemote) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func (f *fakeRemote) maxSeq() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var max uint64
	for _, s := range f.saves {
		if s > max {
			max = s
		}
	}
	return max
}

func newTestCache(t *testing.T) *OnboardCache {
	t.Helper()
	return NewOnboardCache(filepath.Join(t.TempDir(), "onboarded.json"))
}

func newTestStore(t *testing.T, remote *fakeRemote, at time.Time) *Store {
	t.Helper()
	s := NewStore("user-1", remote, newTestCache(t))
	s.now = func() time.Time { return at }
	require.NoError(t, s.Load(context.Background()))
	return s
}

var testNow = time.Date(2026, time.April, 21, 10, 0, 0, 0, time.UTC)

func TestToggleHabitTwiceIsExactNoOp(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	before := s.Snapshot()
	habitID := before.Habits[0].ID

	require.True(t, s.ToggleHabit(habitID))

	mid := s.Snapshot()
	require.True(t, mid.Habits[0].CompletedToday)
	require.Equal(t, before.Habits[0].StreakCount+1, mid.Habits[0].StreakCount)
	require.Equal(t, timeutil.DayKey(testNow), mid.Habits[0].LastCompletedAt)
	require.Contains(t, mid.DailyHabits[timeutil.DayKey(testNow)].Completions, habitID)

	require.True(t, s.ToggleHabit(habitID))

	after := s.Snapshot()
	require.False(t, after.Habits[0].CompletedToday)
	require.Equal(t, before.Habits[0].StreakCount, after.Habits[0].StreakCount)
	require.Equal(t, "", after.Habits[0].LastCompletedAt)
	require.NotContains(t, after.DailyHabits[timeutil.DayKey(testNow)].Completions, habitID)
}

func TestToggleHabitStreakFlooredAtZero(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)
	habitID := s.Snapshot().Habits[0].ID

	// Each off-toggle lands back on zero; the streak never goes negative.
	require.True(t, s.ToggleHabit(habitID))
	require.True(t, s.ToggleHabit(habitID))
	require.True(t, s.ToggleHabit(habitID))
	require.True(t, s.ToggleHabit(habitID))

	require.Equal(t, 0, s.Snapshot().Habits[0].StreakCount)
}

func TestToggleUnknownHabit(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	require.False(t, s.ToggleHabit("nope"))
}

func TestToggleHabitCompletionLeavesStreakAlone(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	before := s.Snapshot()
	habit := before.Habits[0]

	s.ToggleHabitCompletion(habit.ID, "2026-04-18")

	snap := s.Snapshot()
	day, ok := snap.DailyHabits["Sat Apr 18 2026"]
	require.True(t, ok)
	require.Contains(t, day.Completions, habit.ID)
	require.Equal(t, "2026-04-18", day.Date)
	require.Equal(t, habit.Name, day.Completions[habit.ID].HabitName)

	require.Equal(t, habit.StreakCount, snap.Habits[0].StreakCount)
	require.Equal(t, habit.CompletedToday, snap.Habits[0].CompletedToday)
	require.Equal(t, habit.LastCompletedAt, snap.Habits[0].LastCompletedAt)

	s.ToggleHabitCompletion(habit.ID, "2026-04-18")
	day = s.Snapshot().DailyHabits["Sat Apr 18 2026"]
	require.NotContains(t, day.Completions, habit.ID)
}

func TestToggleHabitCompletionDefaultsToToday(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	habitID := s.Snapshot().Habits[0].ID
	s.ToggleHabitCompletion(habitID, "")

	day := s.Snapshot().DailyHabits[timeutil.DayKey(testNow)]
	require.Contains(t, day.Completions, habitID)
}

func TestMutationsProduceMonotoneSyncSequence(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.AddTask(domain.Task{ID: "t1", Title: "one"})
	s.AddTask(domain.Task{ID: "t2", Title: "two"})
	s.DeleteTask("t1")
	s.IncrementTasbih(0)

	require.Eventually(t, func() bool {
		return remote.saveCount() == 4
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, uint64(4), remote.maxSeq())
}

func TestRacingMutatorsKeepSequenceAlignedWithSnapshots(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddTask(domain.Task{ID: strconv.Itoa(i), Title: "task"})
		}(i)
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return remote.saveCount() == n
	}, 2*time.Second, 10*time.Millisecond)

	// A higher sequence number must never carry an older snapshot. Tasks
	// only grow here, so counts ordered by sequence are non-decreasing.
	remote.mu.Lock()
	defer remote.mu.Unlock()
	seqs := make([]uint64, 0, len(remote.taskCounts))
	for seq := range remote.taskCounts {
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(a, b int) bool { return seqs[a] < seqs[b] })
	prev := 0
	for _, seq := range seqs {
		require.GreaterOrEqual(t, remote.taskCounts[seq], prev)
		prev = remote.taskCounts[seq]
	}
}

func TestOnboardingGateIsSticky(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	_, _, onboarded := s.Flags()
	require.False(t, onboarded)

	name := "Yusuf"
	goal := "Memorize Juz Amma"
	s.SetUserSettings(SettingsUpdate{Name: &name, MainGoal: &goal})

	_, _, onboarded = s.Flags()
	require.True(t, onboarded)

	// Clearing a gate field later must not revoke onboarding.
	empty := ""
	s.SetUserSettings(SettingsUpdate{Name: &empty})

	_, _, onboarded = s.Flags()
	require.True(t, onboarded)
}

func TestOnboardCacheSurvivesStoreRebuild(t *testing.T) {
	remote := &fakeRemote{}
	cache := newTestCache(t)

	s := NewStore("user-1", remote, cache)
	s.now = func() time.Time { return testNow }
	require.NoError(t, s.Load(context.Background()))

	s.CompleteOnboarding()

	// A fresh store for the same user (e.g. after sign-out/sign-in before
	// the settings save landed) sees the cached flag.
	s2 := NewStore("user-1", remote, cache)
	s2.now = func() time.Time { return testNow }
	require.NoError(t, s2.Load(context.Background()))

	_, _, onboarded := s2.Flags()
	require.True(t, onboarded)
}

func TestLoadNormalizesDayKeysAndRecomputesCompletedToday(t *testing.T) {
	todayISO := timeutil.ISODate(testNow)
	todayKey := timeutil.DayKey(testNow)

	data := domain.DefaultUserData()
	habitID := data.Habits[0].ID
	data.Habits[0].CompletedToday = false // storage value is untrusted
	data.DailyHabits = map[string]domain.DailyHabits{
		todayISO: {
			Date: todayISO,
			Completions: map[string]domain.HabitCompletion{
				habitID: {HabitID: habitID, HabitName: data.Habits[0].Name},
			},
		},
	}
	data.DailyPrayers = map[string]domain.DailyPrayers{
		todayISO: {Date: todayISO, Fajr: true},
	}

	remote := &fakeRemote{loadData: data}
	s := newTestStore(t, remote, testNow)

	snap := s.Snapshot()
	require.Contains(t, snap.DailyHabits, todayKey)
	require.NotContains(t, snap.DailyHabits, todayISO)
	require.True(t, snap.DailyPrayers[todayKey].Fajr)

	require.True(t, snap.Habits[0].CompletedToday)
	require.Equal(t, todayKey, snap.Habits[0].LastCompletedAt)
	for _, h := range snap.Habits[1:] {
		require.False(t, h.CompletedToday)
	}
}

func TestLoadEnsuresTodayBuckets(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	snap := s.Snapshot()
	todayKey := timeutil.DayKey(testNow)
	require.Contains(t, snap.DailyHabits, todayKey)
	require.Contains(t, snap.DailyPrayers, todayKey)
	require.Equal(t, todayKey, snap.DailyPrayers[todayKey].Date)
}

func TestLoadFailureKeepsDefaultsAndReturnsError(t *testing.T) {
	remote := &fakeRemote{loadErr: errors.New("connection refused")}
	s := NewStore("user-1", remote, newTestCache(t))
	s.now = func() time.Time { return testNow }

	require.Error(t, s.Load(context.Background()))

	isLoading, isSynced, _ := s.Flags()
	require.False(t, isLoading)
	require.False(t, isSynced)
	require.Len(t, s.Snapshot().Habits, len(domain.DefaultHabits()))
}

func TestManagerRetriesFailedFirstLoad(t *testing.T) {
	remote := &fakeRemote{loadErr: errors.New("connection refused")}
	m := NewManager(remote, newTestCache(t))

	_, err := m.Get(context.Background(), "user-1")
	require.Error(t, err)

	remote.mu.Lock()
	remote.loadErr = nil
	remote.mu.Unlock()

	s, err := m.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, 2, remote.loads)

	// Subsequent gets reuse the loaded store.
	again, err := m.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.Same(t, s, again)
	require.Equal(t, 2, remote.loads)
}

func TestManagerDropForcesReload(t *testing.T) {
	remote := &fakeRemote{}
	m := NewManager(remote, newTestCache(t))

	first, err := m.Get(context.Background(), "user-1")
	require.NoError(t, err)

	m.Drop("user-1")

	second, err := m.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.Equal(t, 2, remote.loads)
}

func TestUpdatePrayersAutoCreatesAndNormalizesKey(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	done := true
	rec := s.UpdatePrayers("2026-04-25", PrayersUpdate{Fajr: &done, Dhuhr: &done})

	require.Equal(t, "Sat Apr 25 2026", rec.Date)
	require.True(t, rec.Fajr)
	require.True(t, rec.Dhuhr)
	require.False(t, rec.Asr)

	snap := s.Snapshot()
	require.Contains(t, snap.DailyPrayers, "Sat Apr 25 2026")
	require.NotContains(t, snap.DailyPrayers, "2026-04-25")
}

func TestUpdatePrayersFloorsQadaAtZero(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	negative := -3
	rec := s.UpdatePrayers("2026-04-25", PrayersUpdate{QadaCount: &negative})
	require.Equal(t, 0, rec.QadaCount)
}

func TestTasbihIgnoresOutOfRangeIndex(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.IncrementTasbih(-1)
	s.IncrementTasbih(99)
	s.ResetTasbih(99)

	snap := s.Snapshot()
	for _, e := range snap.TasbihEntries {
		require.Equal(t, 0, e.Count)
	}

	s.IncrementTasbih(0)
	s.IncrementTasbih(0)
	require.Equal(t, 2, s.Snapshot().TasbihEntries[0].Count)

	s.ResetTasbih(0)
	require.Equal(t, 0, s.Snapshot().TasbihEntries[0].Count)
}

func TestDailyScore(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	// Prayer: 3 of 5 -> 60.
	done := true
	s.UpdatePrayers(timeutil.DayKey(testNow), PrayersUpdate{Fajr: &done, Dhuhr: &done, Asr: &done})

	// Habits: defaults hold four, complete two -> 50.
	habits := s.Snapshot().Habits
	require.True(t, s.ToggleHabit(habits[0].ID))
	require.True(t, s.ToggleHabit(habits[1].ID))

	// Academics: 60 minutes today -> 50.
	s.AddStudySession(domain.StudySession{
		ID:              "s1",
		Subject:         "Physics",
		DurationMinutes: 60,
		Timestamp:       "2026-04-21T09:00:00Z",
	})

	// Exercise: 45 minutes today -> 100.
	s.AddWorkoutLog(domain.WorkoutLog{
		ID:              "w1",
		Date:            timeutil.ISODate(testNow),
		DurationMinutes: 45,
	})

	score := s.DailyScore()
	require.Equal(t, 60, score.Prayer)
	require.Equal(t, 50, score.Habits)
	require.Equal(t, 50, score.Academics)
	require.Equal(t, 100, score.Exercise)
	require.Equal(t, 65, score.Total)
}

func TestDailyScoreAveragesIndependentlyRoundedParts(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	done := true
	s.UpdatePrayers(timeutil.DayKey(testNow), PrayersUpdate{
		Fajr: &done, Dhuhr: &done, Asr: &done, Maghrib: &done, Isha: &done,
	})
	for _, h := range s.Snapshot().Habits {
		require.True(t, s.ToggleHabit(h.ID))
	}

	score := s.DailyScore()
	require.Equal(t, 100, score.Prayer)
	require.Equal(t, 100, score.Habits)
	require.Equal(t, 0, score.Academics)
	require.Equal(t, 0, score.Exercise)
	require.Equal(t, 50, score.Total)
}

func TestDailyScoreEmptyDay(t *testing.T) {
	remote := &fakeRemote{loadData: &domain.UserData{
		UserSettings: domain.DefaultUserSettings(),
	}}
	s := newTestStore(t, remote, testNow)

	score := s.DailyScore()
	require.Equal(t, domain.DailyScore{}, score)
}

func TestDailyScoreClampsOverAchievement(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(t, remote, testNow)

	s.AddStudySession(domain.StudySession{
		ID: "s1", DurationMinutes: 500, Timestamp: "2026-04-21T08:00:00Z",
	})
	s.AddWorkoutLog(domain.WorkoutLog{
		ID: "w1", Date: timeutil.ISODate(testNow), DurationMinutes: 180,
	})

	score := s.DailyScore()
	require.Equal(t, 100, score.Academics)
	require.Equal(t, 100, score.Exercise)
}
