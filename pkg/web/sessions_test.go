package web

import (
	"testing"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStore(t *testing.T) {
	store := NewContextStore()

	_, ok := store.Get("wf-1")
	assert.False(t, ok)

	ectx := models.NewExecutionContext("wf-1", models.Email{ID: 1})
	store.Put(ectx)

	got, ok := store.Get("wf-1")
	require.True(t, ok)
	assert.Same(t, ectx, got)

	// Putting the same workflow again replaces the entry.
	replacement := models.NewExecutionContext("wf-1", models.Email{ID: 2})
	store.Put(replacement)

	got, _ = store.Get("wf-1")
	assert.Same(t, replacement, got)

	store.Delete("wf-1")
	_, ok = store.Get("wf-1")
	assert.False(t, ok)
}
