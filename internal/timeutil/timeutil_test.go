package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDayKeyIsIdempotent(t *testing.T) {
	day := time.Date(2026, time.April, 21, 14, 30, 0, 0, time.UTC)
	key := DayKey(day)

	require.Equal(t, "Tue Apr 21 2026", key)
	require.Equal(t, key, NormalizeDayKey(key))
	require.Equal(t, key, NormalizeDayKey(NormalizeDayKey(key)))
}

func TestNormalizeDayKeyAcceptsISOAndRFC3339(t *testing.T) {
	require.Equal(t, "Tue Apr 21 2026", NormalizeDayKey("2026-04-21"))
	require.Equal(t, "Tue Apr 21 2026", NormalizeDayKey("2026-04-21T09:00:00Z"))
}

func TestNormalizeDayKeyLeavesGarbageAlone(t *testing.T) {
	require.Equal(t, "not-a-date", NormalizeDayKey("not-a-date"))
	require.Equal(t, "", NormalizeDayKey(""))
}

func TestDaysUntilRoundsUp(t *testing.T) {
	now := time.Date(2026, time.April, 20, 22, 0, 0, 0, time.UTC)

	require.Equal(t, 1, DaysUntil(now.Add(2*time.Hour), now))
	require.Equal(t, 1, DaysUntil(now.Add(24*time.Hour), now))
	require.Equal(t, 2, DaysUntil(now.Add(25*time.Hour), now))
	require.Equal(t, 0, DaysUntil(now, now))
}

func TestTimeUntilFloorsAtZero(t *testing.T) {
	now := time.Date(2026, time.April, 21, 9, 0, 0, 0, time.UTC)

	c := TimeUntil(now.Add(90*time.Minute+5*time.Second), now)
	require.Equal(t, Countdown{Hours: 1, Minutes: 30, Seconds: 5}, c)

	require.Equal(t, Countdown{}, TimeUntil(now.Add(-time.Hour), now))
}

func TestGreetingBuckets(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{3, "Assalamu Alaikum, Yusuf. Time for Tahajjud."},
		{5, "Good Morning, Yusuf. Time for Fajr."},
		{9, "Good Morning, Yusuf. Have a productive day!"},
		{13, "Good Afternoon, Yusuf. Keep pushing!"},
		{18, "Good Evening, Yusuf. Time to wind down."},
		{22, "Good Night, Yusuf. Rest well."},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Greeting("Yusuf", tc.hour), "hour %d", tc.hour)
	}
}

func TestFormatClock(t *testing.T) {
	morning := time.Date(2026, time.April, 21, 5, 41, 0, 0, time.UTC)
	evening := time.Date(2026, time.April, 21, 19, 5, 0, 0, time.UTC)

	require.Equal(t, "05:41 AM", FormatClock(morning))
	require.Equal(t, "07:05 PM", FormatClock(evening))
}
