// Package models defines the core domain models for the procurement workflow engine.
package models

// WorkflowStatus represents the lifecycle state of a workflow run.
type WorkflowStatus string

const (
	WorkflowStatusPending          WorkflowStatus = "pending"           // Suspended, awaiting supplier selection
	WorkflowStatusInProgress       WorkflowStatus = "in_progress"       // Actively driving steps
	WorkflowStatusSuccess          WorkflowStatus = "success"           // Terminal, order placed
	WorkflowStatusFailed           WorkflowStatus = "failed"            // Terminal, step failure or manager rejection
	WorkflowStatusRequiresApproval WorkflowStatus = "requires_approval" // Suspended, awaiting manager decision
)

// IsTerminal reports whether the workflow has fully terminated.
func (s WorkflowStatus) IsTerminal() bool {
	return s == WorkflowStatusSuccess || s == WorkflowStatusFailed
}

// IsSuspended reports whether the workflow is paused awaiting an external decision.
func (s WorkflowStatus) IsSuspended() bool {
	return s == WorkflowStatusPending || s == WorkflowStatusRequiresApproval
}
