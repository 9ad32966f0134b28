package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedTimes(t *testing.T) *Times {
	t.Helper()
	day := func(h, m int) time.Time {
		return time.Date(2026, time.April, 21, h, m, 0, 0, time.UTC)
	}
	return &Times{
		Fajr:     day(4, 45),
		Sunrise:  day(6, 0),
		Dhuhr:    day(13, 0),
		Asr:      day(17, 30),
		Maghrib:  day(20, 10),
		Isha:     day(21, 45),
		Midnight: day(0, 27).AddDate(0, 0, 1),
	}
}

func TestCurrentPrayerWindows(t *testing.T) {
	times := fixedTimes(t)
	cases := []struct {
		now     time.Time
		want    Name
		current bool
	}{
		{times.Fajr.Add(-time.Minute), "", false},
		{times.Fajr, Fajr, true},
		{times.Sunrise.Add(-time.Second), Fajr, true},
		{times.Sunrise, "", false}, // forenoon gap
		{times.Dhuhr.Add(-time.Minute), "", false},
		{times.Dhuhr, Dhuhr, true},
		{times.Asr, Asr, true},
		{times.Maghrib, Maghrib, true},
		{times.Isha, Isha, true},
		{times.Isha.Add(3 * time.Hour), Isha, true},
	}
	for _, tc := range cases {
		got, ok := CurrentPrayerAt(times, tc.now)
		require.Equal(t, tc.current, ok, "at %s", tc.now)
		require.Equal(t, tc.want, got, "at %s", tc.now)
	}
}

func TestNextPrayerIsStrictlyAfterNow(t *testing.T) {
	times := fixedTimes(t)

	name, at, ok := NextPrayerAt(times, times.Fajr.Add(-time.Hour))
	require.True(t, ok)
	require.Equal(t, Fajr, name)
	require.Equal(t, times.Fajr, at)

	// Exactly at fajr the next prayer is already dhuhr.
	name, at, ok = NextPrayerAt(times, times.Fajr)
	require.True(t, ok)
	require.Equal(t, Dhuhr, name)
	require.Equal(t, times.Dhuhr, at)

	name, _, ok = NextPrayerAt(times, times.Maghrib.Add(time.Minute))
	require.True(t, ok)
	require.Equal(t, Isha, name)

	_, _, ok = NextPrayerAt(times, times.Isha)
	require.False(t, ok)
}

func TestSunPositionClamped(t *testing.T) {
	times := fixedTimes(t)

	require.Equal(t, 0.0, SunPositionAt(times, times.Sunrise.Add(-time.Hour)))
	require.Equal(t, 0.0, SunPositionAt(times, times.Sunrise))
	require.Equal(t, 1.0, SunPositionAt(times, times.Maghrib))
	require.Equal(t, 1.0, SunPositionAt(times, times.Maghrib.Add(time.Hour)))

	mid := times.Sunrise.Add(times.Maghrib.Sub(times.Sunrise) / 2)
	require.InDelta(t, 0.5, SunPositionAt(times, mid), 1e-9)
}

func TestQiblaDirection(t *testing.T) {
	// London bears roughly east-southeast to the Kaaba.
	bearing := QiblaDirection(51.5074, -0.1278)
	require.InDelta(t, 119, bearing, 1.0)

	// New York bears northeast.
	bearing = QiblaDirection(40.7128, -74.0060)
	require.InDelta(t, 58, bearing, 1.0)

	// From the Kaaba itself the bearing is degenerate but must stay in range.
	bearing = QiblaDirection(21.4225241, 39.8261818)
	require.GreaterOrEqual(t, bearing, 0.0)
	require.Less(t, bearing, 360.0)
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Fajr", DisplayName(Fajr))
	require.Equal(t, "Sunrise", DisplayName(Sunrise))
	require.Equal(t, "isha'a", DisplayName(Name("isha'a")))
}
