package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/state"
)

type TasbihHandler struct {
	manager *state.Manager
}

func NewTasbihHandler(manager *state.Manager) *TasbihHandler {
	return &TasbihHandler{manager: manager}
}

func (h *TasbihHandler) List(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"tasbihEntries": store.Snapshot().TasbihEntries})
}

func (h *TasbihHandler) Increment(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "Invalid index")
	}

	store.IncrementTasbih(index)
	return c.JSON(fiber.Map{"tasbihEntries": store.Snapshot().TasbihEntries})
}

func (h *TasbihHandler) Reset(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "Invalid index")
	}

	store.ResetTasbih(index)
	return c.JSON(fiber.Map{"tasbihEntries": store.Snapshot().TasbihEntries})
}
