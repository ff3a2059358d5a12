// Package checks provides the punctuation checks a rule pack can compile.
//
// Each rule object property (for example "suffix" or "preceded_by") is
// bound to a BuilderFunc in a Registry. Packs can only use properties that
// are registered; other properties are treated as rule modifiers or ignored.
package checks

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// BuilderFunc creates a Check from the value of its rule property.
// props holds the whole rule object so builders can read modifiers such as
// "only_last" or "replace".
type BuilderFunc func(value json.RawMessage, props map[string]json.RawMessage) (domain.Check, error)

// Registry maps rule properties to their builders.
// Builders are kept in registration order so compiled rules apply their
// checks deterministically.
type Registry struct {
	builders map[string]BuilderFunc
	order    []string
}

// NewRegistry creates a new empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a check builder to the registry.
// Registering a name twice replaces the builder but keeps its position.
func (r *Registry) Register(name string, builder BuilderFunc) {
	if _, ok := r.builders[name]; !ok {
		r.order = append(r.order, name)
	}
	r.builders[name] = builder
}

// Build creates a check by property name.
// Returns ErrUnsupportedType if the property is not registered.
func (r *Registry) Build(name string, value json.RawMessage, props map[string]json.RawMessage) (domain.Check, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: check %q", domain.ErrUnsupportedType, name)
	}
	return builder(value, props)
}

// Has returns true if a check with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered property names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
