// Package order implements the place_order step.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/google/uuid"
)

var (
	ErrMissingRequest  = errors.New("no purchase request in context")
	ErrMissingSupplier = errors.New("no supplier selected in context")
)

type Step struct{}

func NewStep() *Step {
	return &Step{}
}

func (s *Step) Execute(_ context.Context, ectx *models.ExecutionContext, _ map[string]any, logger *slog.Logger) (any, error) {
	if ectx.Request == nil {
		return nil, ErrMissingRequest
	}

	if ectx.SelectedSupplier == nil {
		return nil, ErrMissingSupplier
	}

	request, supplier := ectx.Request, ectx.SelectedSupplier

	placed := &models.Order{
		OrderID:    generateOrderID(),
		Supplier:   supplier.Name,
		Item:       request.Item,
		Quantity:   request.Quantity,
		TotalPrice: supplier.Total(request.Quantity),
		Status:     models.OrderStatusPlaced,
	}

	logger.Info("Order placed",
		"order_id", placed.OrderID,
		"supplier", placed.Supplier,
		"total_price", placed.TotalPrice,
	)

	return placed, nil
}

func generateOrderID() string {
	return fmt.Sprintf("ORD-%s", uuid.New().String()[:8])
}
