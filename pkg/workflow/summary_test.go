package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_SumsDurations(t *testing.T) {
	orchestrator, _ := newTestOrchestrator(t)

	ectx := models.NewExecutionContext("wf-summary", models.Email{ID: 1})
	ectx.Status = models.WorkflowStatusSuccess
	ectx.CurrentStep = "place_order"
	ectx.AppendLog(models.LogEntry{StepName: "extract", Outcome: models.StepStatusCompleted, Duration: 10 * time.Millisecond})
	ectx.AppendLog(models.LogEntry{StepName: "source", Outcome: models.StepStatusCompleted, Duration: 25 * time.Millisecond})
	ectx.AppendLog(models.LogEntry{StepName: "place_order", Outcome: models.StepStatusFailed, Duration: 5 * time.Millisecond})

	summary := orchestrator.Summarize(ectx)

	assert.Equal(t, "wf-summary", summary.WorkflowID)
	assert.Equal(t, models.WorkflowStatusSuccess, summary.Status)
	assert.Equal(t, 3, summary.StepsExecuted)
	assert.Equal(t, 40*time.Millisecond, summary.TotalExecutionTime)
	assert.Equal(t, "place_order", summary.CurrentStep)
	assert.False(t, summary.RequiresApproval)
	assert.Len(t, summary.ExecutionLog, 3)
}

func TestSummarize_RequiresApprovalFlag(t *testing.T) {
	orchestrator, _ := newTestOrchestrator(t)

	ectx := models.NewExecutionContext("wf-approval", models.Email{ID: 1})
	ectx.Status = models.WorkflowStatusRequiresApproval

	summary := orchestrator.Summarize(ectx)
	assert.True(t, summary.RequiresApproval)
}

func TestSummarize_CountsResumeReRuns(t *testing.T) {
	orchestrator, _ := newTestOrchestrator(t)

	ectx := orchestrator.Run(context.Background(), testEmail, nil)
	require.Equal(t, models.WorkflowStatusPending, ectx.Status)

	supplier := models.Supplier{Name: "Supplier_A", PricePerUnit: 7000, Compliant: true}
	ectx = orchestrator.Resume(context.Background(), ectx, &models.Decisions{SelectedSupplier: &supplier})
	require.Equal(t, models.WorkflowStatusSuccess, ectx.Status)

	summary := orchestrator.Summarize(ectx)

	// Two steps before the suspension plus the four-step resume pass.
	assert.Equal(t, 6, summary.StepsExecuted)
	assert.Equal(t, len(ectx.ExecutionLog), summary.StepsExecuted)
}
