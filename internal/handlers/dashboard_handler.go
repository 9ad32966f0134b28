package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/state"
)

type DashboardHandler struct {
	manager *state.Manager
}

func NewDashboardHandler(manager *state.Manager) *DashboardHandler {
	return &DashboardHandler{manager: manager}
}

// Score returns today's per-category completion percentages and their
// average.
func (h *DashboardHandler) Score(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(store.DailyScore())
}
