// Package events defines event types for workflow lifecycle notifications.
package events

import (
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/google/uuid"
)

type EventType string

// Topic carries every workflow lifecycle event.
const Topic = "procurement.workflows"

const EventTypeMetadataKey = "event_type"

const (
	WorkflowStartedEvent   EventType = "workflow.started"
	WorkflowPausedEvent    EventType = "workflow.paused"
	WorkflowResumedEvent   EventType = "workflow.resumed"
	WorkflowCompletedEvent EventType = "workflow.completed"
	WorkflowFailedEvent    EventType = "workflow.failed"
)

// PauseReason names the decision a paused workflow is waiting for.
type PauseReason string

const (
	AwaitingSupplierSelection PauseReason = "awaiting_supplier_selection"
	AwaitingManagerApproval   PauseReason = "awaiting_manager_approval"
)

type BaseEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	WorkflowID string    `json:"workflow_id"`
}

func (e BaseEvent) GetType() EventType {
	return e.Type
}

func newBaseEvent(eventType EventType, workflowID string) BaseEvent {
	return BaseEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Timestamp:  time.Now().UTC(),
		WorkflowID: workflowID,
	}
}

type WorkflowStarted struct {
	BaseEvent

	EmailID int `json:"email_id"`
}

func NewWorkflowStarted(workflowID string, emailID int) WorkflowStarted {
	return WorkflowStarted{
		BaseEvent: newBaseEvent(WorkflowStartedEvent, workflowID),
		EmailID:   emailID,
	}
}

type WorkflowPaused struct {
	BaseEvent

	Reason PauseReason `json:"reason"`
}

func NewWorkflowPaused(workflowID string, reason PauseReason) WorkflowPaused {
	return WorkflowPaused{
		BaseEvent: newBaseEvent(WorkflowPausedEvent, workflowID),
		Reason:    reason,
	}
}

type WorkflowResumed struct {
	BaseEvent
}

func NewWorkflowResumed(workflowID string) WorkflowResumed {
	return WorkflowResumed{
		BaseEvent: newBaseEvent(WorkflowResumedEvent, workflowID),
	}
}

type WorkflowCompleted struct {
	BaseEvent

	Order *models.Order `json:"order,omitempty"`
}

func NewWorkflowCompleted(workflowID string, order *models.Order) WorkflowCompleted {
	return WorkflowCompleted{
		BaseEvent: newBaseEvent(WorkflowCompletedEvent, workflowID),
		Order:     order,
	}
}

type WorkflowFailed struct {
	BaseEvent

	Error string `json:"error"`
}

func NewWorkflowFailed(workflowID, reason string) WorkflowFailed {
	return WorkflowFailed{
		BaseEvent: newBaseEvent(WorkflowFailedEvent, workflowID),
		Error:     reason,
	}
}
