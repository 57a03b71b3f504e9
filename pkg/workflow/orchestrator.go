package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MelisaYasak/mail-procurement/pkg/eventbus"
	"github.com/MelisaYasak/mail-procurement/pkg/events"
	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/protocol"
	"github.com/MelisaYasak/mail-procurement/pkg/registry"
	"github.com/google/uuid"
)

const rejectionReason = "manager rejected the purchase request"

// Orchestrator drives the fixed procurement step order over a shared
// execution context. It owns all mutations of the workflow status and is the
// only writer of the success history.
//
// Execution is fully synchronous. A suspension is an ordinary return: the
// caller keeps the context and hands it back through Resume together with
// the missing decision. The orchestrator assumes a single logical owner per
// context and takes no locks around context mutation.
type Orchestrator struct {
	executor  *Executor
	registry  *registry.Registry
	publisher eventbus.EventPublisher
	logger    *slog.Logger

	mu      sync.RWMutex
	history map[string]*models.ExecutionContext
}

type Option func(*Orchestrator)

// WithEventPublisher makes the orchestrator publish workflow lifecycle
// events to the given publisher.
func WithEventPublisher(publisher eventbus.EventPublisher) Option {
	return func(o *Orchestrator) {
		o.publisher = publisher
	}
}

func NewOrchestrator(registry *registry.Registry, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		executor: NewExecutor(registry, logger),
		registry: registry,
		logger:   logger,
		history:  make(map[string]*models.ExecutionContext),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// RegisterStep binds a step implementation under a name, overwriting any
// prior binding.
func (o *Orchestrator) RegisterStep(name string, step protocol.Step) {
	o.registry.Register(name, step)
}

// Run builds a fresh context for the email and drives the pipeline from the
// top until it hits a suspension point or a terminal state. The returned
// context is live: the caller must hold it and pass it back to Resume when
// it carries a suspended status.
func (o *Orchestrator) Run(ctx context.Context, email models.Email, decisions *models.Decisions) *models.ExecutionContext {
	ectx := models.NewExecutionContext(generateWorkflowID(), email)

	o.logger.Info("Starting procurement workflow",
		"workflow_id", ectx.WorkflowID,
		"email_id", email.ID,
	)
	o.publish(ctx, events.NewWorkflowStarted(ectx.WorkflowID, email.ID))

	return o.drive(ctx, ectx, decisions)
}

// Resume merges the supplied decisions into a suspended context and
// re-invokes the same top-to-bottom driving routine. Steps preceding the
// suspension point execute again: their artifacts are overwritten and their
// audit entries appended anew. A terminal context is returned unchanged.
func (o *Orchestrator) Resume(ctx context.Context, ectx *models.ExecutionContext, decisions *models.Decisions) *models.ExecutionContext {
	if ectx.Status.IsTerminal() {
		o.logger.Warn("Resume called on terminal workflow",
			"workflow_id", ectx.WorkflowID,
			"status", ectx.Status,
		)

		return ectx
	}

	o.logger.Info("Resuming procurement workflow",
		"workflow_id", ectx.WorkflowID,
		"status", ectx.Status,
	)

	if decisions != nil && decisions.SelectedSupplier != nil {
		supplier := *decisions.SelectedSupplier
		ectx.SelectedSupplier = &supplier
	}

	o.publish(ctx, events.NewWorkflowResumed(ectx.WorkflowID))

	return o.drive(ctx, ectx, decisions)
}

// drive is the single top-to-bottom pipeline routine shared by Run and
// Resume. It implements the workflow state machine: extract -> source ->
// check_compliance -> [approve] -> place_order, with the two suspension
// points and the manager-rejection transition.
func (o *Orchestrator) drive(ctx context.Context, ectx *models.ExecutionContext, decisions *models.Decisions) *models.ExecutionContext {
	ectx.Status = models.WorkflowStatusInProgress

	res := o.executor.Execute(ctx, protocol.StepExtract, ectx, nil)
	if res.Failed() {
		return o.fail(ctx, ectx, res.Error)
	}

	request, err := artifact[*models.PurchaseRequest](res)
	if err != nil {
		return o.fail(ctx, ectx, err.Error())
	}

	ectx.Request = request

	res = o.executor.Execute(ctx, protocol.StepSource, ectx, nil)
	if res.Failed() {
		return o.fail(ctx, ectx, res.Error)
	}

	suppliers, err := artifact[[]models.Supplier](res)
	if err != nil {
		return o.fail(ctx, ectx, err.Error())
	}

	ectx.Suppliers = suppliers

	if decisions != nil && decisions.SelectedSupplier != nil {
		supplier := *decisions.SelectedSupplier
		ectx.SelectedSupplier = &supplier
	}

	// Suspension point 1: no supplier selected yet. The context carries the
	// candidate list back to the caller.
	if ectx.SelectedSupplier == nil {
		ectx.Status = models.WorkflowStatusPending
		o.logger.Info("Workflow paused: awaiting supplier selection", "workflow_id", ectx.WorkflowID)
		o.publish(ctx, events.NewWorkflowPaused(ectx.WorkflowID, events.AwaitingSupplierSelection))

		return ectx
	}

	res = o.executor.Execute(ctx, protocol.StepCheckCompliance, ectx, nil)
	if res.Failed() {
		return o.fail(ctx, ectx, res.Error)
	}

	verdict, err := artifact[models.ComplianceResult](res)
	if err != nil {
		return o.fail(ctx, ectx, err.Error())
	}

	ectx.Compliance = &verdict

	if !verdict.Compliant {
		ectx.Status = models.WorkflowStatusRequiresApproval

		res = o.executor.Execute(ctx, protocol.StepApprove, ectx, map[string]any{
			"reason": verdict.Reason,
		})
		if res.Failed() {
			return o.fail(ctx, ectx, res.Error)
		}

		draft, err := artifact[*models.ApprovalEmail](res)
		if err != nil {
			return o.fail(ctx, ectx, err.Error())
		}

		ectx.ApprovalEmail = draft

		switch {
		case decisions == nil || decisions.ManagerApproved == nil:
			// Suspension point 2: the approval draft is produced and
			// control returns to the caller awaiting the manager decision.
			o.logger.Info("Workflow paused: awaiting manager approval", "workflow_id", ectx.WorkflowID)
			o.publish(ctx, events.NewWorkflowPaused(ectx.WorkflowID, events.AwaitingManagerApproval))

			return ectx
		case !*decisions.ManagerApproved:
			return o.fail(ctx, ectx, rejectionReason)
		default:
			ectx.Status = models.WorkflowStatusInProgress
		}
	}

	res = o.executor.Execute(ctx, protocol.StepPlaceOrder, ectx, nil)
	if res.Failed() {
		return o.fail(ctx, ectx, res.Error)
	}

	order, err := artifact[*models.Order](res)
	if err != nil {
		return o.fail(ctx, ectx, err.Error())
	}

	ectx.Order = order
	ectx.Status = models.WorkflowStatusSuccess

	o.mu.Lock()
	o.history[ectx.WorkflowID] = ectx
	o.mu.Unlock()

	o.logger.Info("Workflow completed successfully",
		"workflow_id", ectx.WorkflowID,
		"total_price", order.TotalPrice,
	)
	o.publish(ctx, events.NewWorkflowCompleted(ectx.WorkflowID, order))

	return ectx
}

// fail marks the context terminally failed. Already-produced artifacts are
// left as they are; there is no rollback.
func (o *Orchestrator) fail(ctx context.Context, ectx *models.ExecutionContext, reason string) *models.ExecutionContext {
	ectx.Status = models.WorkflowStatusFailed
	ectx.FailureReason = reason

	o.logger.Error("Workflow failed",
		"workflow_id", ectx.WorkflowID,
		"reason", reason,
	)
	o.publish(ctx, events.NewWorkflowFailed(ectx.WorkflowID, reason))

	return ectx
}

// Lookup returns the completed context for the given workflow identifier.
// Only workflows that reached success are ever recorded here.
func (o *Orchestrator) Lookup(workflowID string) (*models.ExecutionContext, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	ectx, ok := o.history[workflowID]
	if !ok {
		return nil, fmt.Errorf("lookup %s: %w", workflowID, ErrWorkflowNotFound)
	}

	return ectx, nil
}

func (o *Orchestrator) publish(ctx context.Context, event any) {
	if o.publisher == nil {
		return
	}

	if err := o.publisher.Publish(ctx, event); err != nil {
		o.logger.Warn("Failed to publish workflow event", "error", err)
	}
}

func artifact[T any](res models.StepResult) (T, error) {
	value, ok := res.Data.(T)
	if !ok {
		var zero T

		return zero, fmt.Errorf("step '%s' returned unexpected payload of type %T", res.StepName, res.Data)
	}

	return value, nil
}

func generateWorkflowID() string {
	return fmt.Sprintf("wf-%s", uuid.New().String()[:8])
}
