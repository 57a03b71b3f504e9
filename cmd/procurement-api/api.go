// Package main provides the procurement API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/MelisaYasak/mail-procurement/pkg/inbox"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence"
	"github.com/MelisaYasak/mail-procurement/pkg/registry"
	"github.com/MelisaYasak/mail-procurement/pkg/reminder"
	"github.com/MelisaYasak/mail-procurement/pkg/web"
	"github.com/MelisaYasak/mail-procurement/pkg/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type API struct {
	logger       *slog.Logger
	orchestrator *workflow.Orchestrator
	registry     *registry.Registry
	mailbox      *inbox.Repository
	archive      persistence.Archive
	reminders    *reminder.Scheduler
	validate     *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	orchestrator *workflow.Orchestrator,
	registry *registry.Registry,
	mailbox *inbox.Repository,
	archive persistence.Archive,
	reminders *reminder.Scheduler,
) *API {
	return &API{
		logger:       logger,
		orchestrator: orchestrator,
		registry:     registry,
		mailbox:      mailbox,
		archive:      archive,
		reminders:    reminders,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(a.orchestrator, a.registry, a.mailbox, a.archive, a.reminders, a.validate, a.logger)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Procurement API")
	})

	e := app.Group("/emails")
	e.Get("/", handlers.GetEmails)
	e.Get("/:id", handlers.GetEmail)

	w := app.Group("/workflows")
	w.Get("/", handlers.GetCompletedWorkflows)
	w.Post("/", handlers.StartWorkflow)
	w.Get("/:id", handlers.GetWorkflow)
	w.Get("/:id/summary", handlers.GetWorkflowSummary)
	w.Post("/:id/resume", handlers.ResumeWorkflow)
	w.Post("/:id/reminders", handlers.ScheduleReminder)
	w.Delete("/:id/reminders", handlers.CancelReminder)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
