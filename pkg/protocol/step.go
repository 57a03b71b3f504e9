// Package protocol defines the contract between the workflow engine and
// pluggable step implementations.
package protocol

import (
	"context"
	"log/slog"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

// Fixed step names of the procurement workflow definition.
const (
	StepExtract         = "extract"
	StepSource          = "source"
	StepCheckCompliance = "check_compliance"
	StepApprove         = "approve"
	StepPlaceOrder      = "place_order"
)

// WorkflowSteps is the fixed execution order. The approval step is
// conditional on the compliance verdict.
var WorkflowSteps = []string{
	StepExtract,
	StepSource,
	StepCheckCompliance,
	StepApprove,
	StepPlaceOrder,
}

// Step is a pluggable unit of work. Implementations read the artifacts they
// depend on from the execution context and return the artifact they produce.
// Failure is signaled through the returned error; a step must not panic to
// report bad upstream data.
type Step interface {
	Execute(ctx context.Context, ectx *models.ExecutionContext, params map[string]any, logger *slog.Logger) (any, error)
}

// StepFunc adapts a plain function to the Step interface.
type StepFunc func(ctx context.Context, ectx *models.ExecutionContext, params map[string]any, logger *slog.Logger) (any, error)

func (f StepFunc) Execute(ctx context.Context, ectx *models.ExecutionContext, params map[string]any, logger *slog.Logger) (any, error) {
	return f(ctx, ectx, params, logger)
}
