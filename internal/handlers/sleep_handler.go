package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/state"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type SleepHandler struct {
	manager *state.Manager
}

func NewSleepHandler(manager *state.Manager) *SleepHandler {
	return &SleepHandler{manager: manager}
}

func (h *SleepHandler) List(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"sleepEntries": store.Snapshot().SleepEntries})
}

type createSleepEntryRequest struct {
	Date     string  `json:"date"`
	Bedtime  string  `json:"bedtime"`
	WakeTime string  `json:"wakeTime"`
	Duration float64 `json:"duration"`
	Quality  int     `json:"quality"`
}

func (h *SleepHandler) Create(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createSleepEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Duration < 0 {
		return badRequest(c, "duration must not be negative")
	}
	if req.Date == "" {
		req.Date = timeutil.ISODate(time.Now())
	}

	entry := domain.SleepEntry{
		Date:     req.Date,
		Bedtime:  req.Bedtime,
		WakeTime: req.WakeTime,
		Duration: req.Duration,
		Quality:  req.Quality,
	}
	store.AddSleepEntry(entry)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Stats summarizes the last week of sleep against the configured target.
func (h *SleepHandler) Stats(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(store.SleepStats())
}
