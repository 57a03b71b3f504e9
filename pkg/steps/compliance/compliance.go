// Package compliance implements the check_compliance step: the rule-based
// verdict on a selected supplier against the purchase request.
package compliance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

var (
	// ErrMissingRequest indicates no purchase request artifact is present.
	ErrMissingRequest = errors.New("no purchase request in context")
	// ErrMissingSupplier indicates no supplier has been selected yet.
	ErrMissingSupplier = errors.New("no supplier selected in context")
)

// Evaluate is the pure compliance rule: an ineligible supplier is
// non-compliant regardless of price; otherwise the total cost must not
// exceed the budget. Identical inputs always yield the identical verdict.
func Evaluate(supplier models.Supplier, request models.PurchaseRequest) models.ComplianceResult {
	if !supplier.Compliant {
		return models.ComplianceResult{
			Compliant: false,
			Reason:    "Supplier is not compliant with company policies",
		}
	}

	total := supplier.Total(request.Quantity)
	if total > request.Budget {
		return models.ComplianceResult{
			Compliant: false,
			Reason: fmt.Sprintf("Budget exceeded: %s TL > %s TL",
				formatAmount(total), formatAmount(request.Budget)),
		}
	}

	return models.ComplianceResult{Compliant: true}
}

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

	verdict := Evaluate(*ectx.SelectedSupplier, *ectx.Request)

	if verdict.Compliant {
		logger.Info("Compliance check passed", "supplier", ectx.SelectedSupplier.Name)
	} else {
		logger.Warn("Compliance check failed",
			"supplier", ectx.SelectedSupplier.Name,
			"reason", verdict.Reason,
		)
	}

	return verdict, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
