package state

import (
	"math"
	"strings"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

// DailyScore computes the four sub-scores and their rounded average for the
// current day. Every component is clamped to [0, 100]; each sub-score is
// rounded independently of the total.
func (s *Store) DailyScore() domain.DailyScore {
	now := s.now()
	todayKey := timeutil.DayKey(now)
	todayISO := timeutil.ISODate(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Prayer: five completed obligatory prayers make 100.
	var prayerScore float64
	if rec, ok := s.data.DailyPrayers[todayKey]; ok {
		completed := 0
		for _, done := range []bool{rec.Fajr, rec.Dhuhr, rec.Asr, rec.Maghrib, rec.Isha} {
			if done {
				completed++
			}
		}
		prayerScore = float64(completed) / 5 * 100
	}

	// Habits: fraction completed today; zero when none exist.
	var habitsScore float64
	if len(s.data.Habits) > 0 {
		completed := 0
		for _, h := range s.data.Habits {
			if h.CompletedToday {
				completed++
			}
		}
		habitsScore = float64(completed) / float64(len(s.data.Habits)) * 100
	}

	// Academics: 120 study minutes today make 100.
	totalMinutes := 0
	for _, sess := range s.data.StudySessions {
		if strings.HasPrefix(sess.Timestamp, todayISO) {
			totalMinutes += sess.DurationMinutes
		}
	}
	academicsScore := math.Min(100, float64(totalMinutes)/1.2)

	// Exercise: a 45-minute workout today makes 100.
	var exerciseScore float64
	for _, log := range s.data.WorkoutLogs {
		if log.Date == todayISO {
			exerciseScore = math.Min(100, float64(log.DurationMinutes)/45*100)
			break
		}
	}

	return domain.DailyScore{
		Prayer:    int(math.Round(prayerScore)),
		Academics: int(math.Round(academicsScore)),
		Exercise:  int(math.Round(exerciseScore)),
		Habits:    int(math.Round(habitsScore)),
		Total:     int(math.Round((prayerScore + habitsScore + academicsScore + exerciseScore) / 4)),
	}
}

// SleepStats summarizes the most recent week of sleep entries against the
// configured target.
type SleepStats struct {
	AverageHours float64 `json:"averageHours"`
	TargetHours  float64 `json:"targetHours"`
	Entries      int     `json:"entries"`
}

func (s *Store) SleepStats() SleepStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.data.SleepEntries
	if len(entries) > 7 {
		entries = entries[len(entries)-7:]
	}
	var total float64
	for _, e := range entries {
		total += e.Duration
	}
	stats := SleepStats{TargetHours: s.data.UserSettings.SleepTarget, Entries: len(entries)}
	if len(entries) > 0 {
		stats.AverageHours = total / float64(len(entries))
	}
	return stats
}
