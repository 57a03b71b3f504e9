// Package extract implements the extract step: turning raw email text into a
// structured purchase request.
package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// purchaseRequestSchema is the contract every extraction backend must meet,
// regardless of how it produced the payload.
const purchaseRequestSchema = `{
	"type": "object",
	"properties": {
		"item":     {"type": "string", "minLength": 1},
		"quantity": {"type": "integer", "minimum": 1},
		"budget":   {"type": "number", "exclusiveMinimum": 0}
	},
	"required": ["item", "quantity", "budget"],
	"additionalProperties": false
}`

// Extractor produces a raw purchase-request payload from email text. The
// shipped backend is rule-based; an LLM-backed implementation plugs in here.
type Extractor interface {
	Extract(ctx context.Context, emailBody string) (map[string]any, error)
}

type Step struct {
	extractor Extractor
	schema    *gojsonschema.Schema
}

func NewStep(extractor Extractor) *Step {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(purchaseRequestSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a
		// programming error.
		panic(err)
	}

	return &Step{
		extractor: extractor,
		schema:    schema,
	}
}

func (s *Step) Execute(ctx context.Context, ectx *models.ExecutionContext, _ map[string]any, logger *slog.Logger) (any, error) {
	raw, err := s.extractor.Extract(ctx, ectx.Email.Body)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validating extracted payload: %w", err)
	}

	if !result.Valid() {
		return nil, fmt.Errorf("extracted payload is invalid: %s", result.Errors()[0].String())
	}

	request := &models.PurchaseRequest{
		Item:     raw["item"].(string),
		Quantity: toInt(raw["quantity"]),
		Budget:   toFloat(raw["budget"]),
	}

	logger.Info("Purchase request extracted",
		"item", request.Item,
		"quantity", request.Quantity,
		"budget", request.Budget,
	)

	return request, nil
}

// toInt and toFloat absorb the numeric representations backends hand back:
// JSON decoding yields float64, the rule extractor yields int.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
