package activations

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownActivation is returned when a name has no registered activation.
var ErrUnknownActivation = errors.New("activations: unknown activation")

// Registry maps activation names to implementations. Lookups are
// case-insensitive. A Registry is a plain value owned by whoever builds
// networks with it; there is no package-level table.
type Registry struct {
	byName map[string]Activation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Activation)}
}

// DefaultRegistry returns a registry holding sigmoid, tanh, relu,
// leakyrelu (alpha 0.01) and linear.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, a := range []Activation{Sigmoid{}, Tanh{}, ReLU{}, NewLeakyReLU(0.01), Linear{}} {
		r.Register(a)
	}
	return r
}

// Register adds a under a.Name(), replacing any previous entry.
func (r *Registry) Register(a Activation) {
	r.byName[strings.ToLower(a.Name())] = a
}

// Lookup resolves name. There is no fallback: a miss is ErrUnknownActivation.
func (r *Registry) Lookup(name string) (Activation, error) {
	a, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
	return a, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
