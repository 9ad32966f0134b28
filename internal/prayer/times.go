// Package prayer derives the daily prayer instants from geographic
// coordinates and answers current/next/sun-position queries against a
// wall-clock instant. The astronomy itself comes from adhango; everything
// downstream sees only the typed Times value or ErrCalculation.
package prayer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mnadev/adhango/pkg/calc"
	"github.com/mnadev/adhango/pkg/data"
	"github.com/mnadev/adhango/pkg/util"
)

// ErrCalculation marks an astronomical calculation failure (for example
// unsupported coordinates). Callers render an "unavailable" state instead of
// crashing.
var ErrCalculation = errors.New("prayer time calculation failed")

// Times holds the six daily instants plus the mid-night point between
// sunset and the next fajr.
type Times struct {
	Fajr     time.Time `json:"fajr"`
	Sunrise  time.Time `json:"sunrise"`
	Dhuhr    time.Time `json:"dhuhr"`
	Asr      time.Time `json:"asr"`
	Maghrib  time.Time `json:"maghrib"`
	Isha     time.Time `json:"isha"`
	Midnight time.Time `json:"midnight"`
}

// methodFor maps the settings' calculation-method index onto an adhango
// method. Index 0 (the default) is the Moonsighting Committee, matching the
// jurisprudential method the app has always used.
func methodFor(index int) calc.CalculationMethod {
	methods := []calc.CalculationMethod{
		calc.MOON_SIGHTING_COMMITTEE,
		calc.MUSLIM_WORLD_LEAGUE,
		calc.EGYPTIAN,
		calc.KARACHI,
		calc.UMM_AL_QURA,
		calc.DUBAI,
		calc.QATAR,
		calc.KUWAIT,
		calc.SINGAPORE,
		calc.NORTH_AMERICA,
	}
	if index < 0 || index >= len(methods) {
		return calc.MOON_SIGHTING_COMMITTEE
	}
	return methods[index]
}

// Calculate computes the prayer instants for the civil day containing date at
// the given coordinates. Results are expressed in date's location. The result
// is deterministic for a fixed (lat, lon, date, method) tuple.
func Calculate(latitude, longitude float64, date time.Time, methodIndex int) (*Times, error) {
	day, err := timesFor(latitude, longitude, date, methodIndex)
	if err != nil {
		return nil, err
	}

	next, err := timesFor(latitude, longitude, date.AddDate(0, 0, 1), methodIndex)
	if err != nil {
		return nil, err
	}

	// Mid-night between sunset and the following fajr.
	night := next.Fajr.Sub(day.Maghrib)
	day.Midnight = day.Maghrib.Add(night / 2)
	return day, nil
}

func timesFor(latitude, longitude float64, date time.Time, methodIndex int) (*Times, error) {
	coords, err := util.NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalculation, err)
	}

	params := calc.GetMethodParameters(methodFor(methodIndex))
	pt, err := calc.NewPrayerTimes(coords, data.NewDateComponents(date), params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalculation, err)
	}

	loc := date.Location()
	return &Times{
		Fajr:    pt.Fajr.In(loc),
		Sunrise: pt.Sunrise.In(loc),
		Dhuhr:   pt.Dhuhr.In(loc),
		Asr:     pt.Asr.In(loc),
		Maghrib: pt.Maghrib.In(loc),
		Isha:    pt.Isha.In(loc),
	}, nil
}

// Kaaba coordinates, for the qibla bearing.
const (
	kaabaLatitude  = 21.4225241
	kaabaLongitude = 39.8261818
)

// QiblaDirection returns the great-circle bearing from the given point to the
// Kaaba, in degrees clockwise from true north.
func QiblaDirection(latitude, longitude float64) float64 {
	phi1 := latitude * math.Pi / 180
	phi2 := kaabaLatitude * math.Pi / 180
	deltaLambda := (kaabaLongitude - longitude) * math.Pi / 180

	y := math.Sin(deltaLambda)
	x := math.Cos(phi1)*math.Tan(phi2) - math.Sin(phi1)*math.Cos(deltaLambda)
	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}
