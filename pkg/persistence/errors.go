package persistence

import "errors"

var (
	// ErrContextNotFound indicates no archived context exists for the
	// given workflow identifier.
	ErrContextNotFound = errors.New("workflow context not found")

	// ErrNotTerminal indicates an attempt to archive a context that has
	// not completed successfully.
	ErrNotTerminal = errors.New("workflow context is not successfully completed")
)

// IsContextNotFound checks if an error indicates an archived context was not found.
func IsContextNotFound(err error) bool {
	return errors.Is(err, ErrContextNotFound)
}
