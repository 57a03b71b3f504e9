package web

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/inbox"
	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence"
	"github.com/MelisaYasak/mail-procurement/pkg/registry"
	"github.com/MelisaYasak/mail-procurement/pkg/reminder"
	"github.com/MelisaYasak/mail-procurement/pkg/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type APIHandlers struct {
	orchestrator *workflow.Orchestrator
	registry     *registry.Registry
	inbox        *inbox.Repository
	archive      persistence.Archive
	reminders    *reminder.Scheduler
	sessions     *ContextStore
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewAPIHandlers(
	orchestrator *workflow.Orchestrator,
	registry *registry.Registry,
	mailbox *inbox.Repository,
	archive persistence.Archive,
	reminders *reminder.Scheduler,
	validate *validator.Validate,
	logger *slog.Logger,
) *APIHandlers {
	return &APIHandlers{
		orchestrator: orchestrator,
		registry:     registry,
		inbox:        mailbox,
		archive:      archive,
		reminders:    reminders,
		sessions:     NewContextStore(),
		validator:    validate,
		logger:       logger,
	}
}

func (h *APIHandlers) GetEmails(c fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(h.inbox.ListByCategory(category))
	}

	return c.JSON(h.inbox.List())
}

func (h *APIHandlers) GetEmail(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Email ID must be an integer")
	}

	email, err := h.inbox.GetByID(id)
	if err != nil {
		if inbox.IsEmailNotFound(err) {
			return notFound(c, "Email not found")
		}

		return internalError(c, err)
	}

	return c.JSON(email)
}

// StartWorkflow runs the procurement pipeline for an inbox email. The
// returned context is usually suspended awaiting a supplier selection.
func (h *APIHandlers) StartWorkflow(c fiber.Ctx) error {
	var req StartWorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	email, err := h.inbox.GetByID(req.EmailID)
	if err != nil {
		if inbox.IsEmailNotFound(err) {
			return notFound(c, "Email not found")
		}

		return internalError(c, err)
	}

	ectx := h.orchestrator.Run(c.Context(), email, nil)
	h.afterDrive(c, ectx)

	return c.Status(fiber.StatusCreated).JSON(WorkflowResponse{
		Context: ectx,
		Summary: h.orchestrator.Summarize(ectx),
	})
}

// ResumeWorkflow hands the caller's decisions back to a suspended workflow.
func (h *APIHandlers) ResumeWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	var req ResumeWorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	ectx, ok := h.sessions.Get(id)
	if !ok {
		return notFound(c, "No live workflow with this ID")
	}

	if ectx.Status.IsTerminal() {
		return conflict(c, "Workflow already terminated with status "+string(ectx.Status))
	}

	decisions := &models.Decisions{
		SelectedSupplier: req.SelectedSupplier,
		ManagerApproved:  req.ManagerApproved,
	}

	ectx = h.orchestrator.Resume(c.Context(), ectx, decisions)
	h.afterDrive(c, ectx)

	return c.JSON(WorkflowResponse{
		Context: ectx,
		Summary: h.orchestrator.Summarize(ectx),
	})
}

// GetWorkflow looks a workflow up in the engine's history. Only runs that
// completed successfully are found here; live or failed workflows 404.
func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	ectx, err := h.orchestrator.Lookup(id)
	if err != nil {
		if workflow.IsWorkflowNotFound(err) {
			return notFound(c, "Workflow not found")
		}

		return internalError(c, err)
	}

	return c.JSON(ectx)
}

// GetWorkflowSummary reports on any workflow the API still holds, live or
// terminal.
func (h *APIHandlers) GetWorkflowSummary(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	ectx, ok := h.sessions.Get(id)
	if !ok {
		return notFound(c, "No live workflow with this ID")
	}

	return c.JSON(h.orchestrator.Summarize(ectx))
}

// GetCompletedWorkflows lists the archived (successfully completed) runs.
func (h *APIHandlers) GetCompletedWorkflows(c fiber.Ctx) error {
	contexts, err := h.archive.Contexts(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	if contexts == nil {
		contexts = []*models.ExecutionContext{}
	}

	return c.JSON(contexts)
}

// ScheduleReminder sets up a recurring approval reminder for a workflow
// awaiting the manager decision.
func (h *APIHandlers) ScheduleReminder(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	var req ScheduleReminderRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	ectx, ok := h.sessions.Get(id)
	if !ok {
		return notFound(c, "No live workflow with this ID")
	}

	if ectx.Status != models.WorkflowStatusRequiresApproval || ectx.ApprovalEmail == nil {
		return conflict(c, "Workflow is not awaiting manager approval")
	}

	scheduled, err := h.reminders.Schedule(id, *ectx.ApprovalEmail, time.Duration(req.IntervalMinutes)*time.Minute)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(scheduled)
}

func (h *APIHandlers) CancelReminder(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	if err := h.reminders.Cancel(id); err != nil {
		return notFound(c, "No reminder scheduled for this workflow")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	registryCheck, regOk := h.registry.HealthCheck()

	archiveCheck := "Archive is healthy"
	archiveOk := true

	if err := h.archive.HealthCheck(c.Context()); err != nil {
		archiveCheck = "Archive is unhealthy: " + err.Error()
		archiveOk = false
	}

	status := "unhealthy"
	httpStatus := fiber.StatusInternalServerError

	if regOk && archiveOk {
		status = "healthy"
		httpStatus = fiber.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status": status,
		"checkers": fiber.Map{
			"registry": registryCheck,
			"archive":  archiveCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

// afterDrive keeps the session store and archive in sync with the context
// the engine just returned.
func (h *APIHandlers) afterDrive(c fiber.Ctx, ectx *models.ExecutionContext) {
	h.sessions.Put(ectx)

	if !ectx.Status.IsTerminal() {
		return
	}

	if h.reminders.Scheduled(ectx.WorkflowID) {
		if err := h.reminders.Cancel(ectx.WorkflowID); err != nil {
			h.logger.Warn("Failed to cancel reminder", "workflow_id", ectx.WorkflowID, "error", err)
		}
	}

	if ectx.Status == models.WorkflowStatusSuccess {
		if err := h.archive.SaveContext(c.Context(), ectx); err != nil {
			h.logger.Error("Failed to archive completed workflow",
				"workflow_id", ectx.WorkflowID,
				"error", err,
			)
		}
	}
}
