// Package persistence provides the storage abstraction for completed
// workflow contexts. Only terminal successful runs are archived; in-flight
// workflows live solely in the memory of their caller.
package persistence

import (
	"context"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

type Archive interface {
	SaveContext(ctx context.Context, ectx *models.ExecutionContext) error
	ContextByID(ctx context.Context, workflowID string) (*models.ExecutionContext, error)
	Contexts(ctx context.Context) ([]*models.ExecutionContext, error)
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
