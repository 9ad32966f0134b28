package prayer

import "time"

// Name identifies one of the six daily instants.
type Name string

const (
	Fajr    Name = "fajr"
	Sunrise Name = "sunrise"
	Dhuhr   Name = "dhuhr"
	Asr     Name = "asr"
	Maghrib Name = "maghrib"
	Isha    Name = "isha"
)

// DisplayName returns the capitalized label for a prayer name.
func DisplayName(n Name) string {
	switch n {
	case Fajr:
		return "Fajr"
	case Sunrise:
		return "Sunrise"
	case Dhuhr:
		return "Dhuhr"
	case Asr:
		return "Asr"
	case Maghrib:
		return "Maghrib"
	case Isha:
		return "Isha"
	}
	return string(n)
}

// CurrentPrayerAt returns the prayer window active at now. A prayer is
// current from its own instant (inclusive) up to the next prayer's instant.
// Between sunrise and dhuhr, and before fajr, there is no current prayer and
// ok is false.
func CurrentPrayerAt(t *Times, now time.Time) (Name, bool) {
	switch {
	case !now.Before(t.Isha):
		return Isha, true
	case !now.Before(t.Maghrib):
		return Maghrib, true
	case !now.Before(t.Asr):
		return Asr, true
	case !now.Before(t.Dhuhr):
		return Dhuhr, true
	case !now.Before(t.Sunrise):
		return "", false // forenoon gap
	case !now.Before(t.Fajr):
		return Fajr, true
	}
	return "", false
}

// NextPrayerAt returns the first of the five obligatory prayers whose instant
// is strictly after now. Past isha it returns ok false; the caller recomputes
// against tomorrow's times.
func NextPrayerAt(t *Times, now time.Time) (Name, time.Time, bool) {
	order := []struct {
		name Name
		at   time.Time
	}{
		{Fajr, t.Fajr},
		{Dhuhr, t.Dhuhr},
		{Asr, t.Asr},
		{Maghrib, t.Maghrib},
		{Isha, t.Isha},
	}
	for _, p := range order {
		if now.Before(p.at) {
			return p.name, p.at, true
		}
	}
	return "", time.Time{}, false
}

// SunPositionAt returns the elapsed fraction of the sunrise-to-maghrib
// interval at now, clamped to [0, 1]. It drives the celestial indicator and
// is recomputed at least once a minute by the UI.
func SunPositionAt(t *Times, now time.Time) float64 {
	total := t.Maghrib.Sub(t.Sunrise)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(t.Sunrise)
	if elapsed < 0 {
		return 0
	}
	if elapsed > total {
		return 1
	}
	return float64(elapsed) / float64(total)
}
