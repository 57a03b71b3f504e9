// Package approval implements the approve step: drafting the manager
// approval email for a non-compliant purchase.
package approval

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"text/template"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

var (
	ErrMissingRequest  = errors.New("no purchase request in context")
	ErrMissingSupplier = errors.New("no supplier selected in context")
)

const DefaultManagerEmail = "manager@greypine.com"

var bodyTemplate = template.Must(template.New("approval").Parse(
	`Dear Manager,

The following purchase request requires your approval:

  Item:       {{.Item}}
  Quantity:   {{.Quantity}}
  Supplier:   {{.Supplier}}
  Unit Price: {{.UnitPrice}} TL
  Total Cost: {{.Total}} TL
  Budget:     {{.Budget}} TL

Reason: {{.Reason}}

Please reply with your decision.
`))

type templateData struct {
	Item      string
	Quantity  int
	Supplier  string
	UnitPrice string
	Total     string
	Budget    string
	Reason    string
}

// Step drafts the approval email from a fixed template. The draft is handed
// back to the caller for review; nothing is sent from here.
type Step struct {
	managerEmail string
}

func NewStep(managerEmail string) *Step {
	if managerEmail == "" {
		managerEmail = DefaultManagerEmail
	}

	return &Step{managerEmail: managerEmail}
}

func (s *Step) Execute(_ context.Context, ectx *models.ExecutionContext, params map[string]any, logger *slog.Logger) (any, error) {
	if ectx.Request == nil {
		return nil, ErrMissingRequest
	}

	if ectx.SelectedSupplier == nil {
		return nil, ErrMissingSupplier
	}

	reason := "Approval required"
	if r, ok := params["reason"].(string); ok && r != "" {
		reason = r
	}

	request, supplier := ectx.Request, ectx.SelectedSupplier

	var body bytes.Buffer

	err := bodyTemplate.Execute(&body, templateData{
		Item:      request.Item,
		Quantity:  request.Quantity,
		Supplier:  supplier.Name,
		UnitPrice: formatAmount(supplier.PricePerUnit),
		Total:     formatAmount(supplier.Total(request.Quantity)),
		Budget:    formatAmount(request.Budget),
		Reason:    reason,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering approval email: %w", err)
	}

	draft := &models.ApprovalEmail{
		Subject:      fmt.Sprintf("Approval Required: %s Purchase", request.Item),
		Body:         body.String(),
		ManagerEmail: s.managerEmail,
	}

	logger.Info("Approval email drafted", "subject", draft.Subject, "to", draft.ManagerEmail)

	return draft, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
