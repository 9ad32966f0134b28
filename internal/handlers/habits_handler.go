package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/state"
)

type HabitsHandler struct {
	manager *state.Manager
}

func NewHabitsHandler(manager *state.Manager) *HabitsHandler {
	return &HabitsHandler{manager: manager}
}

func (h *HabitsHandler) List(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	snap := store.Snapshot()
	return c.JSON(fiber.Map{
		"habits":      snap.Habits,
		"dailyHabits": snap.DailyHabits,
	})
}

type createHabitRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (h *HabitsHandler) Create(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if req.Icon == "" {
		req.Icon = "✨"
	}

	habit := domain.Habit{
		ID:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name: req.Name,
		Icon: req.Icon,
	}
	store.AddHabit(habit)
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (h *HabitsHandler) Update(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.HabitUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !store.UpdateHabit(c.Params("id"), req) {
		return notFound(c, "Habit not found")
	}
	return c.JSON(fiber.Map{"habits": store.Snapshot().Habits})
}

func (h *HabitsHandler) Delete(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.DeleteHabit(c.Params("id"))
	return c.JSON(fiber.Map{"habits": store.Snapshot().Habits})
}

// Toggle flips today's completion for the habit: done marks it complete and
// bumps the streak, not-done undoes exactly that.
func (h *HabitsHandler) Toggle(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	if !store.ToggleHabit(c.Params("id")) {
		return notFound(c, "Habit not found")
	}
	snap := store.Snapshot()
	return c.JSON(fiber.Map{
		"habits":      snap.Habits,
		"dailyHabits": snap.DailyHabits,
	})
}

// ToggleCompletion flips a habit's ledger entry for the day given in ?date,
// leaving the streak alone. The history calendar uses this to amend past
// days; a missing date means today.
func (h *HabitsHandler) ToggleCompletion(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.ToggleHabitCompletion(c.Params("id"), c.Query("date"))
	return c.JSON(fiber.Map{"dailyHabits": store.Snapshot().DailyHabits})
}
