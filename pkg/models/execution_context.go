package models

import "time"

// LogEntry is a single audit record of a step attempt. The audit log is
// append-only and never truncated, including across suspend/resume boundaries.
type LogEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	StepName  string        `json:"step_name"`
	Outcome   StepStatus    `json:"outcome"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// ExecutionContext is the single mutable record threaded through a workflow
// run. The orchestrator owns Status and CurrentStep, steps own the artifact
// fields they produce, and the executor alone appends to ExecutionLog.
type ExecutionContext struct {
	WorkflowID string `json:"workflow_id"`
	Email      Email  `json:"email"`

	// Artifacts accumulated by steps. Each is written once per pipeline
	// pass but may be overwritten when a resume re-drives the pipeline.
	Request          *PurchaseRequest  `json:"purchase_request,omitempty"`
	Suppliers        []Supplier        `json:"suppliers,omitempty"`
	SelectedSupplier *Supplier         `json:"selected_supplier,omitempty"`
	Compliance       *ComplianceResult `json:"compliance_result,omitempty"`
	ApprovalEmail    *ApprovalEmail    `json:"approval_email,omitempty"`
	Order            *Order            `json:"order,omitempty"`

	Status        WorkflowStatus `json:"status"`
	CurrentStep   string         `json:"current_step,omitempty"`
	FailureReason string         `json:"failure_reason,omitempty"`
	ExecutionLog  []LogEntry     `json:"execution_log"`
}

// NewExecutionContext creates a pending context for the given email.
func NewExecutionContext(workflowID string, email Email) *ExecutionContext {
	return &ExecutionContext{
		WorkflowID:   workflowID,
		Email:        email,
		Status:       WorkflowStatusPending,
		ExecutionLog: []LogEntry{},
	}
}

// AppendLog appends one audit entry. Only the step executor calls this.
func (c *ExecutionContext) AppendLog(entry LogEntry) {
	c.ExecutionLog = append(c.ExecutionLog, entry)
}

// Decisions carries the external inputs a caller supplies when starting or
// resuming a workflow: the chosen supplier and the manager's verdict. Nil
// pointers mean the decision has not been made yet.
type Decisions struct {
	SelectedSupplier *Supplier `json:"selected_supplier,omitempty"`
	ManagerApproved  *bool     `json:"manager_approved,omitempty"`
}
