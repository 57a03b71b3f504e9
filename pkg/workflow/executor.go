package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/registry"
)

// Executor invokes single steps against an execution context. It is the only
// component that appends audit entries.
type Executor struct {
	registry *registry.Registry
	logger   *slog.Logger
	now      func() time.Time
}

func NewExecutor(registry *registry.Registry, logger *slog.Logger) *Executor {
	return &Executor{
		registry: registry,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute resolves and invokes one named step. Every failure, including an
// unresolvable name, is converted into a failed StepResult; no error escapes
// this boundary. Exactly one audit entry is appended per attempt.
func (e *Executor) Execute(ctx context.Context, name string, ectx *models.ExecutionContext, params map[string]any) models.StepResult {
	logger := e.logger.With(
		"workflow_id", ectx.WorkflowID,
		"step", name,
	)

	step, ok := e.registry.Resolve(name)
	if !ok {
		err := fmt.Sprintf("step '%s' not registered", name)
		logger.Error("Step resolution failed", "error", err)

		ectx.AppendLog(models.LogEntry{
			Timestamp: e.now(),
			StepName:  name,
			Outcome:   models.StepStatusFailed,
			Error:     err,
		})

		return models.StepResult{
			StepName: name,
			Status:   models.StepStatusFailed,
			Error:    err,
		}
	}

	ectx.CurrentStep = name
	logger.Info("Executing step")

	start := e.now()
	data, err := step.Execute(ctx, ectx, params, logger)
	duration := e.now().Sub(start)

	if err != nil {
		logger.Error("Step failed", "error", err, "duration", duration)

		ectx.AppendLog(models.LogEntry{
			Timestamp: e.now(),
			StepName:  name,
			Outcome:   models.StepStatusFailed,
			Duration:  duration,
			Error:     err.Error(),
		})

		return models.StepResult{
			StepName: name,
			Status:   models.StepStatusFailed,
			Error:    err.Error(),
			Duration: duration,
		}
	}

	logger.Info("Step completed", "duration", duration)

	ectx.AppendLog(models.LogEntry{
		Timestamp: e.now(),
		StepName:  name,
		Outcome:   models.StepStatusCompleted,
		Duration:  duration,
	})

	return models.StepResult{
		StepName: name,
		Status:   models.StepStatusCompleted,
		Data:     data,
		Duration: duration,
	}
}
