package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/lifeos-app/lifeos-backend/internal/config"
	"github.com/lifeos-app/lifeos-backend/internal/handlers"
	"github.com/lifeos-app/lifeos-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	settingsHandler *handlers.SettingsHandler,
	tasksHandler *handlers.TasksHandler,
	habitsHandler *handlers.HabitsHandler,
	prayersHandler *handlers.PrayersHandler,
	tasbihHandler *handlers.TasbihHandler,
	quranHandler *handlers.QuranHandler,
	academicsHandler *handlers.AcademicsHandler,
	exerciseHandler *handlers.ExerciseHandler,
	sleepHandler *handlers.SleepHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP. The tracker UI fires a
	// request per tap, so this sits well above normal usage.
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Everything below operates on the caller's store.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/state", settingsHandler.State)
	protected.Put("/settings", settingsHandler.Update)
	protected.Post("/onboarding/complete", settingsHandler.CompleteOnboarding)
	protected.Get("/greeting", settingsHandler.Greeting)

	protected.Get("/tasks", tasksHandler.List)
	protected.Post("/tasks", tasksHandler.Create)
	protected.Put("/tasks/:id", tasksHandler.Update)
	protected.Delete("/tasks/:id", tasksHandler.Delete)

	protected.Get("/habits", habitsHandler.List)
	protected.Post("/habits", habitsHandler.Create)
	protected.Put("/habits/:id", habitsHandler.Update)
	protected.Delete("/habits/:id", habitsHandler.Delete)
	protected.Post("/habits/:id/toggle", habitsHandler.Toggle)
	protected.Post("/habits/:id/completions", habitsHandler.ToggleCompletion)

	protected.Get("/prayers/today", prayersHandler.Today)
	protected.Put("/prayers/:date", prayersHandler.Update)
	protected.Get("/prayer-times", prayersHandler.Times)
	protected.Get("/qibla", prayersHandler.Qibla)

	protected.Get("/tasbih", tasbihHandler.List)
	protected.Post("/tasbih/:index/increment", tasbihHandler.Increment)
	protected.Post("/tasbih/:index/reset", tasbihHandler.Reset)

	protected.Get("/quran", quranHandler.List)
	protected.Post("/quran", quranHandler.Create)

	protected.Get("/exams", academicsHandler.ListExams)
	protected.Post("/exams", academicsHandler.CreateExam)
	protected.Put("/exams/:id", academicsHandler.UpdateExam)
	protected.Delete("/exams/:id", academicsHandler.DeleteExam)
	protected.Get("/study-sessions", academicsHandler.ListSessions)
	protected.Post("/study-sessions", academicsHandler.CreateSession)

	protected.Get("/exercises", exerciseHandler.ListExercises)
	protected.Post("/exercises", exerciseHandler.CreateExercise)
	protected.Put("/exercises/:id", exerciseHandler.UpdateExercise)
	protected.Delete("/exercises/:id", exerciseHandler.DeleteExercise)
	protected.Get("/workouts", exerciseHandler.ListLogs)
	protected.Post("/workouts", exerciseHandler.CreateLog)
	protected.Put("/workouts/:id", exerciseHandler.UpdateLog)
	protected.Delete("/workouts/:id", exerciseHandler.DeleteLog)

	protected.Get("/workout-session", exerciseHandler.Session)
	protected.Post("/workout-session/start", exerciseHandler.StartSession)
	protected.Post("/workout-session/exercises", exerciseHandler.AddSessionExercise)
	protected.Put("/workout-session/entries/:entry/sets/:set", exerciseHandler.UpdateSessionSet)
	protected.Post("/workout-session/finish", exerciseHandler.FinishSession)
	protected.Post("/workout-session/discard", exerciseHandler.DiscardSession)
	protected.Get("/workout-schedule", exerciseHandler.Schedule)
	protected.Put("/workout-schedule", exerciseHandler.SetSchedule)

	protected.Get("/sleep", sleepHandler.List)
	protected.Post("/sleep", sleepHandler.Create)
	protected.Get("/sleep/stats", sleepHandler.Stats)

	protected.Get("/score", dashboardHandler.Score)
}
