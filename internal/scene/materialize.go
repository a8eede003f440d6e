package scene

import (
	"errors"
	"fmt"

	"github.com/domforge/domforge/internal/bundle"
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
)

// ErrUnrecognizedTag reports a tree node that is neither an entity, a
// known component kind, nor a registered bundle.
var ErrUnrecognizedTag = errors.New("unrecognized tag")

var bundles = make(map[string]bundle.Bundle, 8)

// RegisterBundle makes a bundle usable as a tree tag. Later registrations
// under the same name win.
func RegisterBundle(b bundle.Bundle) {
	bundles[b.Name()] = b
}

// Materialize walks the tree depth-first against the world: one entity
// per entity node (parented by traversal context), one factory call plus
// Add per component tag, one bundle expansion per bundle tag. Returns
// the root entity.
//
// Materialize is not atomic: entities created before an error remain in
// the world, exactly as a failed imperative build would leave them.
func Materialize(w *ecs.World, root *Node) (ecs.EntityID, error) {
	if root == nil || root.Tag != TagEntity {
		return 0, fmt.Errorf("scene root must be an entity node: %w", ErrUnrecognizedTag)
	}
	return materialize(w, 0, root)
}

func materialize(w *ecs.World, parent ecs.EntityID, n *Node) (ecs.EntityID, error) {
	e, err := w.CreateEntity(parent)
	if err != nil {
		return 0, err
	}
	for _, c := range n.Children {
		switch {
		case c.Tag == TagEntity:
			if _, err := materialize(w, e, c); err != nil {
				return 0, err
			}
		case component.Known(ecs.Kind(c.Tag)):
			comp, err := component.Build(ecs.Kind(c.Tag), c.Props)
			if err != nil {
				return 0, err
			}
			if err := w.Add(e, comp); err != nil {
				return 0, err
			}
		default:
			b, ok := bundles[c.Tag]
			if !ok {
				return 0, fmt.Errorf("tag %q: %w", c.Tag, ErrUnrecognizedTag)
			}
			if err := bundle.Apply(w, e, b, bundle.Params(c.Props)); err != nil {
				return 0, err
			}
		}
	}
	return e, nil
}
