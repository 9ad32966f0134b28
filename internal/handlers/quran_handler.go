package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/state"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type QuranHandler struct {
	manager *state.Manager
}

func NewQuranHandler(manager *state.Manager) *QuranHandler {
	return &QuranHandler{manager: manager}
}

func (h *QuranHandler) List(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"quranLogs": store.Snapshot().QuranLogs})
}

type createQuranLogRequest struct {
	Date      string `json:"date"`
	PagesRead int    `json:"pagesRead"`
	Surah     string `json:"surah"`
	Notes     string `json:"notes"`
}

func (h *QuranHandler) Create(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createQuranLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.PagesRead < 0 {
		return badRequest(c, "pagesRead must not be negative")
	}
	if req.Date == "" {
		req.Date = timeutil.ISODate(time.Now())
	}

	log := domain.QuranLog{
		Date:      req.Date,
		PagesRead: req.PagesRead,
		Surah:     req.Surah,
		Notes:     req.Notes,
	}
	store.AddQuranLog(log)
	return c.Status(fiber.StatusCreated).JSON(log)
}
