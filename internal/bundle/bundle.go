// Package bundle provides composition sugar: a bundle expands parameters
// into an ordered component list for one entity. Bundles own no entity
// and no storage; attaching is always the caller's Add loop.
package bundle

import (
	"fmt"

	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
)

// Params is the single parameter object a bundle is invoked with.
type Params map[string]any

// Builder turns params into an ordered component list.
type Builder func(Params) ([]ecs.Component, error)

// Bundle is a named, parameterized component-list factory.
type Bundle struct {
	name  string
	build Builder
}

// Define wraps a builder function into a Bundle.
func Define(name string, build Builder) Bundle {
	return Bundle{name: name, build: build}
}

func (b Bundle) Name() string {
	return b.name
}

// Build invokes the builder. The returned order is the attach order;
// a bundle returning two components of the same kind is last-write-wins
// once attached.
func (b Bundle) Build(p Params) ([]ecs.Component, error) {
	comps, err := b.build(p)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", b.name, err)
	}
	return comps, nil
}

// Apply builds the bundle and attaches each component to the entity, in
// list order.
func Apply(w *ecs.World, e ecs.EntityID, b Bundle, p Params) error {
	comps, err := b.Build(p)
	if err != nil {
		return err
	}
	for _, c := range comps {
		if err := w.Add(e, c); err != nil {
			return err
		}
	}
	return nil
}

// String extracts a required string param.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("missing param %q: %w", key, component.ErrValidation)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("param %q: want string, got %T: %w", key, v, component.ErrValidation)
	}
	return s, nil
}
