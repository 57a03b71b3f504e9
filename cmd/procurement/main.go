// Package main provides the batch evaluation runner: it drives every inbox
// fixture through the procurement pipeline, answering the suspension points
// automatically, and prints an aggregate report.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/cmd"
	"github.com/MelisaYasak/mail-procurement/pkg/eventbus"
	"github.com/MelisaYasak/mail-procurement/pkg/events"
	"github.com/MelisaYasak/mail-procurement/pkg/inbox"
	"github.com/MelisaYasak/mail-procurement/pkg/log"
	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/workflow"
	cli "github.com/urfave/cli/v3"
)

func main() {
	command := &cli.Command{
		Name:                  "procurement",
		Usage:                 "Run the batch procurement evaluation over the inbox fixtures",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "Seed for supplier sourcing and the simulated manager (0 uses the current time)",
				Value:   0,
				Sources: cli.EnvVars("SEED"),
			},
			&cli.FloatFlag{
				Name:    "approval-rate",
				Usage:   "Probability the simulated manager approves a flagged request",
				Value:   0.7,
				Sources: cli.EnvVars("APPROVAL_RATE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "pretty",
				Usage:   "Render colorized log output",
				Value:   true,
				Sources: cli.EnvVars("PRETTY_LOGS"),
			},
		},
		Action: runBatch,
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}

func runBatch(ctx context.Context, command *cli.Command) error {
	log.Setup(command.String("log-level"), command.Bool("pretty"))
	logger := log.WithModule("batch")

	seed := int64(command.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	registry, err := cmd.NewRegistry(logger, cmd.RegistryConfig{Seed: seed})
	if err != nil {
		return err
	}

	bus := eventbus.NewGoChannelEventBus(logger)
	defer func() {
		if err := bus.Close(); err != nil {
			logger.Error("Failed to close event bus", "error", err)
		}
	}()

	if err := bus.Subscribe(ctx, func(ctx context.Context, eventType events.EventType, _ []byte) error {
		logger.Debug("Workflow event", "type", eventType)

		return nil
	}); err != nil {
		return err
	}

	orchestrator := workflow.NewOrchestrator(registry, logger, workflow.WithEventPublisher(bus))
	manager := rand.New(rand.NewSource(seed))

	emails := inbox.BatchEmails()
	logger.Info("Starting batch evaluation", "emails", len(emails), "seed", seed)

	results := make([]*models.ExecutionContext, 0, len(emails))
	for _, email := range emails {
		results = append(results, evaluate(ctx, orchestrator, logger, manager, command.Float("approval-rate"), email))
	}

	report(results)

	return nil
}

// evaluate drives a single email to a terminal state. The first suspension is
// answered by selecting the cheapest sourced supplier, the second by the
// simulated manager.
func evaluate(
	ctx context.Context,
	orchestrator *workflow.Orchestrator,
	logger *slog.Logger,
	manager *rand.Rand,
	approvalRate float64,
	email models.Email,
) *models.ExecutionContext {
	ectx := orchestrator.Run(ctx, email, nil)

	if ectx.Status == models.WorkflowStatusPending {
		supplier := cheapest(ectx.Suppliers)
		logger.Info("Auto-selecting cheapest supplier",
			"workflow_id", ectx.WorkflowID,
			"supplier", supplier.Name,
			"price_per_unit", supplier.PricePerUnit,
		)

		ectx = orchestrator.Resume(ctx, ectx, &models.Decisions{SelectedSupplier: &supplier})
	}

	if ectx.Status == models.WorkflowStatusRequiresApproval {
		approved := manager.Float64() < approvalRate
		logger.Info("Simulated manager decision",
			"workflow_id", ectx.WorkflowID,
			"approved", approved,
			"reason", ectx.Compliance.Reason,
		)

		ectx = orchestrator.Resume(ctx, ectx, &models.Decisions{ManagerApproved: &approved})
	}

	return ectx
}

func cheapest(suppliers []models.Supplier) models.Supplier {
	best := suppliers[0]
	for _, supplier := range suppliers[1:] {
		if supplier.PricePerUnit < best.PricePerUnit {
			best = supplier
		}
	}

	return best
}

func report(results []*models.ExecutionContext) {
	var succeeded, rejected, failed, approvals int

	fmt.Println()
	fmt.Println("=== Batch Evaluation ===")

	for _, ectx := range results {
		fmt.Printf("%s [email %d] -> %s\n", ectx.WorkflowID, ectx.Email.ID, ectx.Status)

		if ectx.FailureReason != "" {
			fmt.Printf("  reason: %s\n", ectx.FailureReason)
		}

		if ectx.ApprovalEmail != nil {
			approvals++

			fmt.Printf("  approval draft: %s\n", ectx.ApprovalEmail.Subject)
		}

		if ectx.Order != nil {
			fmt.Printf("  order: %s %dx %s for %.2f TL from %s\n",
				ectx.Order.OrderID, ectx.Order.Quantity, ectx.Order.Item, ectx.Order.TotalPrice, ectx.Order.Supplier)
		}

		switch ectx.Status {
		case models.WorkflowStatusSuccess:
			succeeded++
		case models.WorkflowStatusFailed:
			if ectx.FailureReason == "manager rejected the purchase request" {
				rejected++
			} else {
				failed++
			}
		}
	}

	fmt.Println("========================")
	fmt.Printf("succeeded: %d  rejected: %d  failed: %d  needed approval: %d  total: %d\n",
		succeeded, rejected, failed, approvals, len(results))
}
