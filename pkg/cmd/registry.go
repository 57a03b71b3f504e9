// Package cmd provides common initialization functions for the command-line
// applications.
package cmd

import (
	"log/slog"

	"github.com/MelisaYasak/mail-procurement/pkg/protocol"
	"github.com/MelisaYasak/mail-procurement/pkg/registry"
	"github.com/MelisaYasak/mail-procurement/pkg/steps/approval"
	"github.com/MelisaYasak/mail-procurement/pkg/steps/compliance"
	"github.com/MelisaYasak/mail-procurement/pkg/steps/extract"
	"github.com/MelisaYasak/mail-procurement/pkg/steps/order"
	"github.com/MelisaYasak/mail-procurement/pkg/steps/supplier"
)

// RegistryConfig configures the native step set.
type RegistryConfig struct {
	// Seed drives the supplier sourcing simulation.
	Seed int64
	// ManagerEmail is the recipient of approval drafts.
	ManagerEmail string
}

// NewRegistry builds a registry holding the five native procurement steps
// and validates it against the workflow definition.
func NewRegistry(logger *slog.Logger, cfg RegistryConfig) (*registry.Registry, error) {
	reg := registry.NewRegistry(logger)

	reg.Register(protocol.StepExtract, extract.NewStep(extract.NewRuleExtractor()))
	reg.Register(protocol.StepSource, supplier.NewStep(cfg.Seed))
	reg.Register(protocol.StepCheckCompliance, compliance.NewStep())
	reg.Register(protocol.StepApprove, approval.NewStep(cfg.ManagerEmail))
	reg.Register(protocol.StepPlaceOrder, order.NewStep())

	if err := reg.Validate(protocol.WorkflowSteps...); err != nil {
		return nil, err
	}

	return reg, nil
}
