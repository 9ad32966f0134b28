package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/state"
)

type TasksHandler struct {
	manager *state.Manager
}

func NewTasksHandler(manager *state.Manager) *TasksHandler {
	return &TasksHandler{manager: manager}
}

func (h *TasksHandler) List(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"tasks": store.Snapshot().Tasks})
}

type createTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	DueDate     string              `json:"dueDate"`
}

func (h *TasksHandler) Create(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "Title is required")
	}
	if req.Status == "" {
		req.Status = domain.TaskTodo
	}
	if req.Priority == "" {
		req.Priority = domain.PriorityDunya
	}

	now := time.Now()
	task := domain.Task{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   now.Format(time.RFC3339),
	}
	store.AddTask(task)
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TasksHandler) Update(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.TaskUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !store.UpdateTask(c.Params("id"), req) {
		return notFound(c, "Task not found")
	}
	return c.JSON(fiber.Map{"tasks": store.Snapshot().Tasks})
}

func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.DeleteTask(c.Params("id"))
	return c.JSON(fiber.Map{"tasks": store.Snapshot().Tasks})
}
