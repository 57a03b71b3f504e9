package workflow

import "errors"

var (
	// ErrWorkflowNotFound indicates no completed workflow exists for the
	// given identifier. Only contexts that reached success are recorded in
	// the history, so lookups against pending, awaiting-approval or failed
	// workflows report not-found even while the caller still holds them.
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// IsWorkflowNotFound checks if an error indicates a workflow was not found.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}
