// Package timeutil holds the calendar and clock helpers the trackers share:
// the canonical day key for day-scoped records, greeting and time-of-day
// buckets, and countdown math.
package timeutil

import (
	"time"
)

// DayKeyLayout is the canonical calendar-day format, e.g. "Mon Apr 21 2026".
// Day-scoped records (daily prayers, per-day habit completions) are indexed
// by this string and nothing else.
const DayKeyLayout = "Mon Jan 02 2006"

// ISODateLayout is the wire format for dates persisted remotely.
const ISODateLayout = "2006-01-02"

// DayKey returns the canonical day key for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ISODate returns the remote-facing date string for t.
func ISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseDay parses any supported encoding of a calendar day: the canonical
// key itself, an ISO date, or an RFC 3339 timestamp. ok is false for
// anything else.
func ParseDay(s string) (time.Time, bool) {
	for _, layout := range []string{DayKeyLayout, ISODateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDayKey maps any supported encoding of a calendar day onto the
// canonical key. Unparseable input is returned unchanged so a malformed
// remote row degrades to an unreachable bucket instead of corrupting
// another day's record.
func NormalizeDayKey(s string) string {
	if t, ok := ParseDay(s); ok {
		return DayKey(t)
	}
	return s
}

// DaysUntil counts whole days from now until target, rounding up so a
// deadline later today still reads as one day away.
func DaysUntil(target, now time.Time) int {
	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Countdown is a clock-face breakdown of the time remaining until an instant.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TimeUntil returns the countdown from now to target, floored at zero.
func TimeUntil(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff < 0 {
		diff = 0
	}
	return Countdown{
		Hours:   int(diff / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

// Greeting returns the salutation for the given wall-clock hour.
func Greeting(name string, hour int) string {
	switch {
	case hour < 5:
		return "Assalamu Alaikum, " + name + ". Time for Tahajjud."
	case hour < 7:
		return "Good Morning, " + name + ". Time for Fajr."
	case hour < 12:
		return "Good Morning, " + name + ". Have a productive day!"
	case hour < 17:
		return "Good Afternoon, " + name + ". Keep pushing!"
	case hour < 20:
		return "Good Evening, " + name + ". Time to wind down."
	default:
		return "Good Night, " + name + ". Rest well."
	}
}

// TimeOfDay buckets the hour into a sky phase used for theming.
func TimeOfDay(hour int) string {
	switch {
	case hour < 5:
		return "night"
	case hour < 7:
		return "dawn"
	case hour < 10:
		return "morning"
	case hour < 13:
		return "noon"
	case hour < 16:
		return "afternoon"
	case hour < 19:
		return "sunset"
	case hour < 21:
		return "twilight"
	default:
		return "night"
	}
}

// FormatClock renders an instant as a 12-hour clock string, e.g. "05:41 AM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}
