package web

import (
	"sync"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

// ContextStore holds live workflow contexts between HTTP requests. The
// engine hands a suspended context back to its caller; for the API that
// caller is this store. One context has one owner: concurrent resumes of the
// same workflow are the client's mistake to avoid, the store only makes the
// map access itself safe.
type ContextStore struct {
	mu       sync.RWMutex
	contexts map[string]*models.ExecutionContext
}

func NewContextStore() *ContextStore {
	return &ContextStore{
		contexts: make(map[string]*models.ExecutionContext),
	}
}

func (s *ContextStore) Put(ectx *models.ExecutionContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts[ectx.WorkflowID] = ectx
}

func (s *ContextStore) Get(workflowID string) (*models.ExecutionContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ectx, ok := s.contexts[workflowID]

	return ectx, ok
}

func (s *ContextStore) Delete(workflowID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.contexts, workflowID)
}
