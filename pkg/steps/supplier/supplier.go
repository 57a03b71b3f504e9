// Package supplier implements the source step: sourcing candidate suppliers
// for a purchase request.
package supplier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

// ErrMissingRequest indicates the sourcing step ran before a purchase
// request was extracted.
var ErrMissingRequest = errors.New("no purchase request in context")

const candidateCount = 3

// Step simulates supplier sourcing: three candidates quoting around the
// per-unit budget, with roughly one in four flagged ineligible. A real
// sourcing backend would replace this step wholesale.
type Step struct {
	rng *rand.Rand
}

func NewStep(seed int64) *Step {
	return &Step{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *Step) Execute(_ context.Context, ectx *models.ExecutionContext, _ map[string]any, logger *slog.Logger) (any, error) {
	request := ectx.Request
	if request == nil {
		return nil, ErrMissingRequest
	}

	basePrice := request.Budget / float64(request.Quantity)
	suppliers := make([]models.Supplier, 0, candidateCount)

	for i := range candidateCount {
		variation := 0.8 + s.rng.Float64()*0.5
		suppliers = append(suppliers, models.Supplier{
			Name:         fmt.Sprintf("Supplier_%c", 'A'+i),
			PricePerUnit: math.Round(basePrice*variation*100) / 100,
			Compliant:    s.rng.Intn(4) != 0,
		})
	}

	logger.Info("Suppliers sourced", "count", len(suppliers), "item", request.Item)

	return suppliers, nil
}
