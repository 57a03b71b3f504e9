package file

import (
	"context"
	"testing"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successContext(workflowID string) *models.ExecutionContext {
	ectx := models.NewExecutionContext(workflowID, models.Email{ID: 4, Sender: "Mike Johnson"})
	ectx.Status = models.WorkflowStatusSuccess
	ectx.Order = &models.Order{
		OrderID:    "ORD-abcd1234",
		Supplier:   "Supplier_A",
		Item:       "laptop",
		Quantity:   10,
		TotalPrice: 70000,
		Status:     models.OrderStatusPlaced,
	}

	return ectx
}

func TestArchive_SaveAndLoad(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	ectx := successContext("wf-11111111")
	require.NoError(t, archive.SaveContext(context.Background(), ectx))

	loaded, err := archive.ContextByID(context.Background(), "wf-11111111")
	require.NoError(t, err)

	assert.Equal(t, ectx.WorkflowID, loaded.WorkflowID)
	assert.Equal(t, models.WorkflowStatusSuccess, loaded.Status)
	require.NotNil(t, loaded.Order)
	assert.Equal(t, "ORD-abcd1234", loaded.Order.OrderID)
}

func TestArchive_RejectsNonSuccess(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	ectx := models.NewExecutionContext("wf-pending", models.Email{ID: 1})
	err = archive.SaveContext(context.Background(), ectx)
	assert.ErrorIs(t, err, persistence.ErrNotTerminal)

	ectx.Status = models.WorkflowStatusFailed
	err = archive.SaveContext(context.Background(), ectx)
	assert.ErrorIs(t, err, persistence.ErrNotTerminal)
}

func TestArchive_ContextByID_NotFound(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	_, err = archive.ContextByID(context.Background(), "wf-missing")
	assert.True(t, persistence.IsContextNotFound(err))
}

func TestArchive_Contexts(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, archive.SaveContext(context.Background(), successContext("wf-aaaa0001")))
	require.NoError(t, archive.SaveContext(context.Background(), successContext("wf-aaaa0002")))

	contexts, err := archive.Contexts(context.Background())
	require.NoError(t, err)
	assert.Len(t, contexts, 2)
}

func TestArchive_Overwrite(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	ectx := successContext("wf-bbbb0001")
	require.NoError(t, archive.SaveContext(context.Background(), ectx))

	ectx.Order.TotalPrice = 65000
	require.NoError(t, archive.SaveContext(context.Background(), ectx))

	loaded, err := archive.ContextByID(context.Background(), "wf-bbbb0001")
	require.NoError(t, err)
	assert.InDelta(t, 65000, loaded.Order.TotalPrice, 0.0001)

	contexts, err := archive.Contexts(context.Background())
	require.NoError(t, err)
	assert.Len(t, contexts, 1)
}

func TestArchive_FileURLPrefix(t *testing.T) {
	dir := t.TempDir()

	archive, err := NewArchive("file://" + dir)
	require.NoError(t, err)
	require.NoError(t, archive.HealthCheck(context.Background()))

	require.NoError(t, archive.SaveContext(context.Background(), successContext("wf-cccc0001")))

	loaded, err := archive.ContextByID(context.Background(), "wf-cccc0001")
	require.NoError(t, err)
	assert.Equal(t, "wf-cccc0001", loaded.WorkflowID)
}
