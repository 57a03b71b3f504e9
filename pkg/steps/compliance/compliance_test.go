package compliance

import (
	"context"
	"log/slog"
	"testing"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_CompliantWithinBudget(t *testing.T) {
	supplier := models.Supplier{Name: "Supplier_A", PricePerUnit: 7000, Compliant: true}
	request := models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}

	verdict := Evaluate(supplier, request)

	assert.True(t, verdict.Compliant)
	assert.Empty(t, verdict.Reason)
}

func TestEvaluate_IneligibleSupplierWinsOverBudget(t *testing.T) {
	// An ineligible supplier is rejected for eligibility even when the
	// total also exceeds the budget.
	supplier := models.Supplier{Name: "Supplier_B", PricePerUnit: 9000, Compliant: false}
	request := models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}

	verdict := Evaluate(supplier, request)

	assert.False(t, verdict.Compliant)
	assert.Equal(t, "Supplier is not compliant with company policies", verdict.Reason)
}

func TestEvaluate_BudgetExceeded(t *testing.T) {
	supplier := models.Supplier{Name: "Supplier_C", PricePerUnit: 8200, Compliant: true}
	request := models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}

	verdict := Evaluate(supplier, request)

	assert.False(t, verdict.Compliant)
	assert.Equal(t, "Budget exceeded: 82000 TL > 80000 TL", verdict.Reason)
}

func TestEvaluate_ExactBudgetIsCompliant(t *testing.T) {
	supplier := models.Supplier{Name: "Supplier_A", PricePerUnit: 8000, Compliant: true}
	request := models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}

	verdict := Evaluate(supplier, request)
	assert.True(t, verdict.Compliant)
}

func TestEvaluate_Deterministic(t *testing.T) {
	supplier := models.Supplier{Name: "Supplier_B", PricePerUnit: 120.5, Compliant: true}
	request := models.PurchaseRequest{Item: "telefon", Quantity: 100, Budget: 10000}

	first := Evaluate(supplier, request)
	for range 5 {
		assert.Equal(t, first, Evaluate(supplier, request))
	}
}

func TestStep_Execute_RequiresArtifacts(t *testing.T) {
	step := NewStep()

	ectx := models.NewExecutionContext("wf-1", models.Email{ID: 1})
	_, err := step.Execute(context.Background(), ectx, nil, slog.Default())
	assert.ErrorIs(t, err, ErrMissingRequest)

	ectx.Request = &models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}
	_, err = step.Execute(context.Background(), ectx, nil, slog.Default())
	assert.ErrorIs(t, err, ErrMissingSupplier)
}

func TestStep_Execute_ReturnsVerdict(t *testing.T) {
	step := NewStep()

	ectx := models.NewExecutionContext("wf-1", models.Email{ID: 1})
	ectx.Request = &models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}
	ectx.SelectedSupplier = &models.Supplier{Name: "Supplier_A", PricePerUnit: 7000, Compliant: true}

	data, err := step.Execute(context.Background(), ectx, nil, slog.Default())
	require.NoError(t, err)

	verdict, ok := data.(models.ComplianceResult)
	require.True(t, ok)
	assert.True(t, verdict.Compliant)
}
