package approval

import (
	"context"
	"log/slog"
	"testing"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvalContext() *models.ExecutionContext {
	ectx := models.NewExecutionContext("wf-1", models.Email{ID: 4})
	ectx.Request = &models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}
	ectx.SelectedSupplier = &models.Supplier{Name: "Supplier_C", PricePerUnit: 8200, Compliant: true}

	return ectx
}

func TestStep_Execute_DraftsApprovalEmail(t *testing.T) {
	step := NewStep("")

	data, err := step.Execute(context.Background(), approvalContext(), map[string]any{
		"reason": "Budget exceeded: 82000 TL > 80000 TL",
	}, slog.Default())
	require.NoError(t, err)

	draft, ok := data.(*models.ApprovalEmail)
	require.True(t, ok)

	assert.Equal(t, "Approval Required: laptop Purchase", draft.Subject)
	assert.Equal(t, DefaultManagerEmail, draft.ManagerEmail)

	assert.Contains(t, draft.Body, "Dear Manager,")
	assert.Contains(t, draft.Body, "Item:       laptop")
	assert.Contains(t, draft.Body, "Quantity:   10")
	assert.Contains(t, draft.Body, "Supplier:   Supplier_C")
	assert.Contains(t, draft.Body, "Unit Price: 8200 TL")
	assert.Contains(t, draft.Body, "Total Cost: 82000 TL")
	assert.Contains(t, draft.Body, "Budget:     80000 TL")
	assert.Contains(t, draft.Body, "Reason: Budget exceeded: 82000 TL > 80000 TL")
}

func TestStep_Execute_CustomManagerEmail(t *testing.T) {
	step := NewStep("cfo@greypine.com")

	data, err := step.Execute(context.Background(), approvalContext(), nil, slog.Default())
	require.NoError(t, err)

	draft := data.(*models.ApprovalEmail)
	assert.Equal(t, "cfo@greypine.com", draft.ManagerEmail)
}

func TestStep_Execute_DefaultReason(t *testing.T) {
	step := NewStep("")

	data, err := step.Execute(context.Background(), approvalContext(), nil, slog.Default())
	require.NoError(t, err)

	draft := data.(*models.ApprovalEmail)
	assert.Contains(t, draft.Body, "Reason: Approval required")
}

func TestStep_Execute_RequiresArtifacts(t *testing.T) {
	step := NewStep("")

	ectx := models.NewExecutionContext("wf-1", models.Email{ID: 1})
	_, err := step.Execute(context.Background(), ectx, nil, slog.Default())
	assert.ErrorIs(t, err, ErrMissingRequest)

	ectx.Request = &models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}
	_, err = step.Execute(context.Background(), ectx, nil, slog.Default())
	assert.ErrorIs(t, err, ErrMissingSupplier)
}
