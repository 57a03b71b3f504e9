// Package memory provides an in-memory archive, used by tests and the
// batch runner.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence"
)

type Archive struct {
	mu       sync.RWMutex
	contexts map[string]*models.ExecutionContext
}

func NewArchive() *Archive {
	return &Archive{
		contexts: make(map[string]*models.ExecutionContext),
	}
}

func (a *Archive) SaveContext(_ context.Context, ectx *models.ExecutionContext) error {
	if ectx.Status != models.WorkflowStatusSuccess {
		return fmt.Errorf("archive %s: %w", ectx.WorkflowID, persistence.ErrNotTerminal)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.contexts[ectx.WorkflowID] = ectx

	return nil
}

func (a *Archive) ContextByID(_ context.Context, workflowID string) (*models.ExecutionContext, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ectx, ok := a.contexts[workflowID]
	if !ok {
		return nil, fmt.Errorf("context %s: %w", workflowID, persistence.ErrContextNotFound)
	}

	return ectx, nil
}

func (a *Archive) Contexts(_ context.Context) ([]*models.ExecutionContext, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	contexts := make([]*models.ExecutionContext, 0, len(a.contexts))
	for _, ectx := range a.contexts {
		contexts = append(contexts, ectx)
	}

	return contexts, nil
}

func (a *Archive) HealthCheck(_ context.Context) error {
	return nil
}

func (a *Archive) Close(_ context.Context) error {
	return nil
}
