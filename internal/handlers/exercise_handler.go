package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/dto"
	"github.com/lifeos-app/lifeos-backend/internal/state"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type ExerciseHandler struct {
	manager *state.Manager
}

func NewExerciseHandler(manager *state.Manager) *ExerciseHandler {
	return &ExerciseHandler{manager: manager}
}

func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"exercises": store.Snapshot().Exercises})
}

type createExerciseRequest struct {
	Name        string              `json:"name"`
	Type        domain.ExerciseType `json:"type"`
	DefaultSets int                 `json:"defaultSets"`
	DefaultReps int                 `json:"defaultReps"`
	MuscleGroup string              `json:"muscleGroup"`
}

func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if req.Type == "" {
		req.Type = domain.ExerciseStrength
	}
	if req.DefaultSets <= 0 {
		req.DefaultSets = 3
	}
	if req.DefaultReps <= 0 {
		req.DefaultReps = 10
	}

	ex := domain.Exercise{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:        req.Name,
		Type:        req.Type,
		DefaultSets: req.DefaultSets,
		DefaultReps: req.DefaultReps,
		IsCustom:    true,
		MuscleGroup: req.MuscleGroup,
	}
	store.AddExercise(ex)
	return c.Status(fiber.StatusCreated).JSON(ex)
}

func (h *ExerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.ExerciseUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !store.UpdateExercise(c.Params("id"), req) {
		return notFound(c, "Exercise not found")
	}
	return c.JSON(fiber.Map{"exercises": store.Snapshot().Exercises})
}

func (h *ExerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.DeleteExercise(c.Params("id"))
	return c.JSON(fiber.Map{"exercises": store.Snapshot().Exercises})
}

func (h *ExerciseHandler) ListLogs(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"workoutLogs": store.Snapshot().WorkoutLogs})
}

type createWorkoutLogRequest struct {
	Date            string                   `json:"date"`
	Name            string                   `json:"name"`
	Entries         []domain.WorkoutLogEntry `json:"entries"`
	DurationMinutes int                      `json:"durationMinutes"`
	Notes           string                   `json:"notes"`
}

func (h *ExerciseHandler) CreateLog(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createWorkoutLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Date == "" {
		req.Date = timeutil.ISODate(time.Now())
	}

	log := domain.WorkoutLog{
		ID:              strconv.FormatInt(time.Now().UnixMilli(), 10),
		Date:            req.Date,
		Name:            req.Name,
		Entries:         req.Entries,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	store.AddWorkoutLog(log)
	return c.Status(fiber.StatusCreated).JSON(log)
}

func (h *ExerciseHandler) UpdateLog(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.WorkoutLogUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !store.UpdateWorkoutLog(c.Params("id"), req) {
		return notFound(c, "Workout log not found")
	}
	return c.JSON(fiber.Map{"workoutLogs": store.Snapshot().WorkoutLogs})
}

func (h *ExerciseHandler) DeleteLog(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.DeleteWorkoutLog(c.Params("id"))
	return c.JSON(fiber.Map{"workoutLogs": store.Snapshot().WorkoutLogs})
}

// Session lifecycle. Starting while active resumes, finishing while idle is
// a 409; the session itself never touches the remote store.

func (h *ExerciseHandler) Session(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(store.WorkoutSession())
}

type startSessionRequest struct {
	Name string `json:"name"`
}

func (h *ExerciseHandler) StartSession(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req startSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		req.Name = "Workout"
	}

	return c.JSON(store.StartWorkoutSession(req.Name))
}

type addSessionExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
}

func (h *ExerciseHandler) AddSessionExercise(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req addSessionExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var exercise *domain.Exercise
	for _, ex := range store.Snapshot().Exercises {
		if ex.ID == req.ExerciseID {
			exercise = &ex
			break
		}
	}
	if exercise == nil {
		return notFound(c, "Exercise not found")
	}

	if !store.AddSessionExercise(*exercise) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "No active workout session",
		})
	}
	return c.JSON(store.WorkoutSession())
}

func (h *ExerciseHandler) UpdateSessionSet(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	entryIndex, err := c.ParamsInt("entry")
	if err != nil {
		return badRequest(c, "Invalid entry index")
	}
	setIndex, err := c.ParamsInt("set")
	if err != nil {
		return badRequest(c, "Invalid set index")
	}

	var req state.SetUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !store.UpdateSessionSet(entryIndex, setIndex, req) {
		return notFound(c, "No such set in the active session")
	}
	return c.JSON(store.WorkoutSession())
}

func (h *ExerciseHandler) FinishSession(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	log, ok := store.FinishWorkoutSession()
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "No active workout session",
		})
	}
	return c.JSON(log)
}

func (h *ExerciseHandler) DiscardSession(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.DiscardWorkoutSession()
	return c.JSON(fiber.Map{"message": "Session discarded"})
}

func (h *ExerciseHandler) Schedule(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"schedule": store.WorkoutSchedule()})
}

// SetSchedule replaces the weekly workout plan wholesale.
func (h *ExerciseHandler) SetSchedule(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var plan []domain.WorkoutSchedule
	if err := c.BodyParser(&plan); err != nil {
		return badRequest(c, "Invalid request body")
	}
	for _, d := range plan {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return badRequest(c, "dayOfWeek must be between 0 and 6")
		}
	}

	store.SetWorkoutSchedule(plan)
	return c.JSON(fiber.Map{"schedule": store.WorkoutSchedule()})
}
