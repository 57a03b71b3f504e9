package workflow

import (
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

// Summary is the aggregate report derived from a context's audit log.
type Summary struct {
	WorkflowID         string                `json:"workflow_id"`
	Status             models.WorkflowStatus `json:"status"`
	StepsExecuted      int                   `json:"steps_executed"`
	TotalExecutionTime time.Duration         `json:"total_execution_time"`
	CurrentStep        string                `json:"current_step,omitempty"`
	RequiresApproval   bool                  `json:"requires_approval"`
	ExecutionLog       []models.LogEntry     `json:"execution_log"`
}

// Summarize derives the execution summary for a context. StepsExecuted
// counts every attempted step invocation, including re-attempts after a
// resume; TotalExecutionTime is the sum of all recorded per-step durations.
func (o *Orchestrator) Summarize(ectx *models.ExecutionContext) Summary {
	var total time.Duration
	for _, entry := range ectx.ExecutionLog {
		total += entry.Duration
	}

	return Summary{
		WorkflowID:         ectx.WorkflowID,
		Status:             ectx.Status,
		StepsExecuted:      len(ectx.ExecutionLog),
		TotalExecutionTime: total,
		CurrentStep:        ectx.CurrentStep,
		RequiresApproval:   ectx.Status == models.WorkflowStatusRequiresApproval,
		ExecutionLog:       ectx.ExecutionLog,
	}
}
