package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/dto"
	"github.com/lifeos-app/lifeos-backend/internal/prayer"
	"github.com/lifeos-app/lifeos-backend/internal/state"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type PrayersHandler struct {
	manager *state.Manager
}

func NewPrayersHandler(manager *state.Manager) *PrayersHandler {
	return &PrayersHandler{manager: manager}
}

// Today returns the tracked record for today, creating nothing: an untracked
// day comes back as an all-false record.
func (h *PrayersHandler) Today(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	key := timeutil.DayKey(time.Now())
	rec, ok := store.Snapshot().DailyPrayers[key]
	if !ok {
		rec.Date = key
	}
	return c.JSON(rec)
}

// Update merges prayer flags into the record for the given date, creating
// the record on first touch.
func (h *PrayersHandler) Update(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.PrayersUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	rec := store.UpdatePrayers(c.Params("date"), req)
	return c.JSON(rec)
}

// Times computes the astronomical schedule for the user's stored location,
// plus the live current/next prayer and sun position. An optional ?date=
// (YYYY-MM-DD) overrides today.
func (h *PrayersHandler) Times(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	settings := store.Snapshot().UserSettings
	now := time.Now()
	date := now
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation(timeutil.ISODateLayout, q, now.Location())
		if err != nil {
			return badRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	times, err := prayer.Calculate(settings.Latitude, settings.Longitude, date, settings.CalculationMethod)
	if err != nil {
		if errors.Is(err, prayer.ErrCalculation) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Error: true, Message: "Prayer times unavailable for this location",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute prayer times",
		})
	}

	resp := fiber.Map{
		"times":       times,
		"sunPosition": prayer.SunPositionAt(times, now),
		"qibla":       prayer.QiblaDirection(settings.Latitude, settings.Longitude),
	}
	if name, ok := prayer.CurrentPrayerAt(times, now); ok {
		resp["current"] = fiber.Map{"name": name, "displayName": prayer.DisplayName(name)}
	}
	if name, at, ok := prayer.NextPrayerAt(times, now); ok {
		resp["next"] = fiber.Map{
			"name":        name,
			"displayName": prayer.DisplayName(name),
			"at":          timeutil.FormatClock(at),
			"countdown":   timeutil.TimeUntil(at, now),
		}
	}
	return c.JSON(resp)
}

// Qibla returns the great-circle bearing to the Kaaba from the stored
// location.
func (h *PrayersHandler) Qibla(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	settings := store.Snapshot().UserSettings
	return c.JSON(fiber.Map{
		"qibla": prayer.QiblaDirection(settings.Latitude, settings.Longitude),
	})
}
