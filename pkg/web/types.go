// Package web provides HTTP request and response types for the procurement API.
package web

import (
	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/workflow"
)

// StartWorkflowRequest starts a workflow for an inbox email.
type StartWorkflowRequest struct {
	EmailID int `json:"email_id" validate:"required,min=1"`
}

// ResumeWorkflowRequest carries the decisions a suspended workflow waits
// for. Both fields are optional; which one applies depends on the
// suspension point.
type ResumeWorkflowRequest struct {
	SelectedSupplier *models.Supplier `json:"selected_supplier,omitempty" validate:"omitempty"`
	ManagerApproved  *bool            `json:"manager_approved,omitempty"`
}

// ScheduleReminderRequest schedules a recurring approval reminder.
type ScheduleReminderRequest struct {
	IntervalMinutes int `json:"interval_minutes" validate:"required,min=1,max=1440"`
}

// WorkflowResponse is returned whenever a workflow is started or resumed.
type WorkflowResponse struct {
	Context *models.ExecutionContext `json:"context"`
	Summary workflow.Summary         `json:"summary"`
}
