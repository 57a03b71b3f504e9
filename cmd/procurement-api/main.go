package main

import (
	"context"
	"os"
	"time"

	"github.com/MelisaYasak/mail-procurement/pkg/cmd"
	"github.com/MelisaYasak/mail-procurement/pkg/eventbus"
	"github.com/MelisaYasak/mail-procurement/pkg/inbox"
	"github.com/MelisaYasak/mail-procurement/pkg/log"
	"github.com/MelisaYasak/mail-procurement/pkg/reminder"
	"github.com/MelisaYasak/mail-procurement/pkg/steps/approval"
	"github.com/MelisaYasak/mail-procurement/pkg/workflow"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 9090

func main() {
	command := &cli.Command{
		Name:                  "procurement-api",
		Usage:                 "Run the procurement workflow API server",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "archive-url",
				Usage:   "Where completed workflows are archived (directory path or memory://)",
				Value:   "./data/completed",
				Sources: cli.EnvVars("ARCHIVE_URL"),
			},
			&cli.StringFlag{
				Name:    "manager-email",
				Usage:   "Recipient of approval request drafts",
				Value:   approval.DefaultManagerEmail,
				Sources: cli.EnvVars("MANAGER_EMAIL"),
			},
			&cli.IntFlag{
				Name:    "sourcing-seed",
				Usage:   "Seed for the supplier sourcing simulation (0 uses the current time)",
				Value:   0,
				Sources: cli.EnvVars("SOURCING_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"), false)
			logger := log.WithModule("api")

			logger.InfoContext(ctx, "Initializing procurement API")

			seed := int64(command.Int("sourcing-seed"))
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			registry, err := cmd.NewRegistry(logger, cmd.RegistryConfig{
				Seed:         seed,
				ManagerEmail: command.String("manager-email"),
			})
			if err != nil {
				return err
			}

			archive, err := cmd.NewArchive(command.String("archive-url"))
			if err != nil {
				return err
			}

			defer func() {
				if err := archive.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close archive", "error", err)
				}
			}()

			bus := eventbus.NewGoChannelEventBus(logger)
			defer func() {
				if err := bus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			orchestrator := workflow.NewOrchestrator(registry, logger, workflow.WithEventPublisher(bus))

			reminders := reminder.NewScheduler(reminder.NewLogSender(logger), logger)
			defer reminders.Stop()

			api := NewAPI(
				logger,
				orchestrator,
				registry,
				inbox.NewRepository(),
				archive,
				reminders,
			)

			return api.Start(command.Int("port"))
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
