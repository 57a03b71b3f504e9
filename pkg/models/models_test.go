package models

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowStatus_IsTerminal(t *testing.T) {
	assert.True(t, WorkflowStatusSuccess.IsTerminal())
	assert.True(t, WorkflowStatusFailed.IsTerminal())
	assert.False(t, WorkflowStatusPending.IsTerminal())
	assert.False(t, WorkflowStatusInProgress.IsTerminal())
	assert.False(t, WorkflowStatusRequiresApproval.IsTerminal())
}

func TestWorkflowStatus_IsSuspended(t *testing.T) {
	assert.True(t, WorkflowStatusPending.IsSuspended())
	assert.True(t, WorkflowStatusRequiresApproval.IsSuspended())
	assert.False(t, WorkflowStatusInProgress.IsSuspended())
	assert.False(t, WorkflowStatusSuccess.IsSuspended())
	assert.False(t, WorkflowStatusFailed.IsSuspended())
}

func TestNewExecutionContext(t *testing.T) {
	email := Email{ID: 7, Body: "Need 10 laptops. Budget is 80000 TL."}
	ectx := NewExecutionContext("wf-deadbeef", email)

	assert.Equal(t, "wf-deadbeef", ectx.WorkflowID)
	assert.Equal(t, email, ectx.Email)
	assert.Equal(t, WorkflowStatusPending, ectx.Status)
	assert.Empty(t, ectx.ExecutionLog)
	assert.Nil(t, ectx.Request)
	assert.Nil(t, ectx.Order)
}

func TestExecutionContext_AppendLog(t *testing.T) {
	ectx := NewExecutionContext("wf-1", Email{ID: 1})

	ectx.AppendLog(LogEntry{StepName: "extract", Outcome: StepStatusCompleted, Duration: time.Millisecond})
	ectx.AppendLog(LogEntry{StepName: "source", Outcome: StepStatusFailed, Error: "boom"})

	require.Len(t, ectx.ExecutionLog, 2)
	assert.Equal(t, "extract", ectx.ExecutionLog[0].StepName)
	assert.Equal(t, StepStatusFailed, ectx.ExecutionLog[1].Outcome)
	assert.Equal(t, "boom", ectx.ExecutionLog[1].Error)
}

func TestStepResult_Failed(t *testing.T) {
	assert.True(t, StepResult{Status: StepStatusFailed}.Failed())
	assert.False(t, StepResult{Status: StepStatusCompleted}.Failed())
}

func TestSupplier_Total(t *testing.T) {
	supplier := Supplier{Name: "Supplier_A", PricePerUnit: 12.5, Compliant: true}

	assert.InDelta(t, 125.0, supplier.Total(10), 0.0001)
	assert.InDelta(t, 0.0, supplier.Total(0), 0.0001)
}

func TestPurchaseRequest_Validation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	valid := PurchaseRequest{Item: "laptop", Quantity: 5, Budget: 50000}
	require.NoError(t, validate.Struct(valid))

	missingItem := PurchaseRequest{Quantity: 5, Budget: 50000}
	assert.Error(t, validate.Struct(missingItem))

	zeroQuantity := PurchaseRequest{Item: "laptop", Quantity: 0, Budget: 50000}
	assert.Error(t, validate.Struct(zeroQuantity))

	zeroBudget := PurchaseRequest{Item: "laptop", Quantity: 5}
	assert.Error(t, validate.Struct(zeroBudget))
}
