// Package registry maps step names to their implementations.
package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MelisaYasak/mail-procurement/pkg/protocol"
)

type Registry struct {
	logger *slog.Logger
	steps  map[string]protocol.Step
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		steps:  make(map[string]protocol.Step),
	}
}

// Register binds a step implementation under a name. Re-registration
// overwrites the prior binding; last write wins.
func (r *Registry) Register(name string, step protocol.Step) {
	r.steps[name] = step
	r.logger.Info("Step registered", "step", name)
}

// Resolve returns the step bound to name. Callers must check the boolean;
// an unknown name is not an error at this layer.
func (r *Registry) Resolve(name string) (protocol.Step, bool) {
	step, ok := r.steps[name]

	return step, ok
}

// Validate checks that every given step name has a registered
// implementation. Run it at startup so a missing binding surfaces before the
// first workflow, not mid-run.
func (r *Registry) Validate(names ...string) error {
	var missing []string

	for _, name := range names {
		if _, ok := r.steps[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("steps not registered: %s", strings.Join(missing, ", "))
	}

	return nil
}

// HealthCheck reports whether the registry holds any step bindings.
func (r *Registry) HealthCheck() (string, bool) {
	if len(r.steps) == 0 {
		return "No steps registered", false
	}

	return fmt.Sprintf("%d steps registered", len(r.steps)), true
}
