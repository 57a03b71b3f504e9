package order

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderContext() *models.ExecutionContext {
	ectx := models.NewExecutionContext("wf-1", models.Email{ID: 4})
	ectx.Request = &models.PurchaseRequest{Item: "laptop", Quantity: 10, Budget: 80000}
	ectx.SelectedSupplier = &models.Supplier{Name: "Supplier_A", PricePerUnit: 7000, Compliant: true}

	return ectx
}

func TestStep_Execute_PlacesOrder(t *testing.T) {
	step := NewStep()

	data, err := step.Execute(context.Background(), orderContext(), nil, slog.Default())
	require.NoError(t, err)

	placed, ok := data.(*models.Order)
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(placed.OrderID, "ORD-"))
	assert.Len(t, placed.OrderID, len("ORD-")+8)
	assert.Equal(t, "Supplier_A", placed.Supplier)
	assert.Equal(t, "laptop", placed.Item)
	assert.Equal(t, 10, placed.Quantity)
	assert.InDelta(t, 70000, placed.TotalPrice, 0.0001)
	assert.Equal(t, models.OrderStatusPlaced, placed.Status)
}

func TestStep_Execute_UniqueOrderIDs(t *testing.T) {
	step := NewStep()

	first, err := step.Execute(context.Background(), orderContext(), nil, slog.Default())
	require.NoError(t, err)

	second, err := step.Execute(context.Background(), orderContext(), nil, slog.Default())
	require.NoError(t, err)

	assert.NotEqual(t, first.(*models.Order).OrderID, second.(*models.Order).OrderID)
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
