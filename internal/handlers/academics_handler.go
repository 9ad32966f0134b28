package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/state"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type AcademicsHandler struct {
	manager *state.Manager
}

func NewAcademicsHandler(manager *state.Manager) *AcademicsHandler {
	return &AcademicsHandler{manager: manager}
}

type examView struct {
	domain.Exam
	DaysUntil int `json:"daysUntil"`
}

// ListExams returns exams with a countdown in days, floored at zero for
// past dates.
func (h *AcademicsHandler) ListExams(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	now := time.Now()
	exams := store.Snapshot().Exams
	views := make([]examView, 0, len(exams))
	for _, e := range exams {
		days := 0
		if target, err := time.ParseInLocation(timeutil.ISODateLayout, e.Date, now.Location()); err == nil {
			days = timeutil.DaysUntil(target, now)
			if days < 0 {
				days = 0
			}
		}
		views = append(views, examView{Exam: e, DaysUntil: days})
	}
	return c.JSON(fiber.Map{"exams": views})
}

type createExamRequest struct {
	Subject string   `json:"subject"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Tags    []string `json:"tags"`
	Notes   string   `json:"notes"`
}

func (h *AcademicsHandler) CreateExam(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createExamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Subject == "" || req.Date == "" {
		return badRequest(c, "Subject and date are required")
	}

	exam := domain.Exam{
		ID:      strconv.FormatInt(time.Now().UnixMilli(), 10),
		Subject: req.Subject,
		Date:    req.Date,
		Time:    req.Time,
		Tags:    req.Tags,
		Notes:   req.Notes,
	}
	store.AddExam(exam)
	return c.Status(fiber.StatusCreated).JSON(exam)
}

func (h *AcademicsHandler) UpdateExam(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req state.ExamUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !store.UpdateExam(c.Params("id"), req) {
		return notFound(c, "Exam not found")
	}
	return c.JSON(fiber.Map{"exams": store.Snapshot().Exams})
}

func (h *AcademicsHandler) DeleteExam(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	store.DeleteExam(c.Params("id"))
	return c.JSON(fiber.Map{"exams": store.Snapshot().Exams})
}

func (h *AcademicsHandler) ListSessions(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}
	return c.JSON(fiber.Map{"studySessions": store.Snapshot().StudySessions})
}

type createStudySessionRequest struct {
	Subject         string `json:"subject"`
	DurationMinutes int    `json:"durationMinutes"`
	PomodoroCount   int    `json:"pomodoroCount"`
}

func (h *AcademicsHandler) CreateSession(c *fiber.Ctx) error {
	store := storeFor(c, h.manager)
	if store == nil {
		return nil
	}

	var req createStudySessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.DurationMinutes <= 0 {
		return badRequest(c, "durationMinutes must be positive")
	}

	now := time.Now()
	sess := domain.StudySession{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Subject:         req.Subject,
		DurationMinutes: req.DurationMinutes,
		Timestamp:       now.Format(time.RFC3339),
		PomodoroCount:   req.PomodoroCount,
	}
	store.AddStudySession(sess)
	return c.Status(fiber.StatusCreated).JSON(sess)
}
