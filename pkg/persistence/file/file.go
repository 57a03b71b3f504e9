// Package file provides file-based archival of completed workflow contexts.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence"
)

// Archive stores one JSON document per completed workflow under root.
type Archive struct {
	root string
}

func NewArchive(root string) (*Archive, error) {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	if err := os.MkdirAll(cleanRoot, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	return &Archive{root: cleanRoot}, nil
}

func (a *Archive) SaveContext(_ context.Context, ectx *models.ExecutionContext) error {
	if ectx.Status != models.WorkflowStatusSuccess {
		return fmt.Errorf("archive %s: %w", ectx.WorkflowID, persistence.ErrNotTerminal)
	}

	data, err := json.MarshalIndent(ectx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding context %s: %w", ectx.WorkflowID, err)
	}

	if err := os.WriteFile(a.path(ectx.WorkflowID), data, 0o644); err != nil {
		return fmt.Errorf("writing context %s: %w", ectx.WorkflowID, err)
	}

	return nil
}

func (a *Archive) ContextByID(_ context.Context, workflowID string) (*models.ExecutionContext, error) {
	data, err := os.ReadFile(a.path(workflowID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("context %s: %w", workflowID, persistence.ErrContextNotFound)
		}

		return nil, fmt.Errorf("reading context %s: %w", workflowID, err)
	}

	var ectx models.ExecutionContext
	if err := json.Unmarshal(data, &ectx); err != nil {
		return nil, fmt.Errorf("decoding context %s: %w", workflowID, err)
	}

	return &ectx, nil
}

func (a *Archive) Contexts(ctx context.Context) ([]*models.ExecutionContext, error) {
	entries, err := os.ReadDir(a.root)
	if err != nil {
		return nil, fmt.Errorf("listing archive: %w", err)
	}

	var contexts []*models.ExecutionContext

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		ectx, err := a.ContextByID(ctx, strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, err
		}

		contexts = append(contexts, ectx)
	}

	return contexts, nil
}

func (a *Archive) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(a.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

func (a *Archive) Close(_ context.Context) error {
	return nil
}

func (a *Archive) path(workflowID string) string {
	return filepath.Join(a.root, workflowID+".json")
}
