package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	coresys "github.com/domforge/domforge/internal/core/system"
	"github.com/domforge/domforge/internal/host"
)

// ElementSystem creates one host node per entity holding DOMElement and
// keeps entity-tree structure mirrored as node nesting: new nodes attach
// under the nearest ancestor's node, or the root container for roots.
// Re-running with unchanged state performs no host calls.
type ElementSystem struct {
	world *ecs.World
	ext   host.Externals
	index *Index
}

func NewElementSystem(world *ecs.World, index *Index) *ElementSystem {
	return &ElementSystem{world: world, ext: world.Externals(), index: index}
}

func (s *ElementSystem) Phase() coresys.Phase { return coresys.PhaseStructure }

func (s *ElementSystem) Update() error {
	s.index.clearFresh()
	changes := s.world.Changes()

	// Entities that dropped DOMElement: unwrap their node, keeping
	// descendant nodes in the tree.
	for _, e := range changes.Unset(component.KindDOMElement) {
		s.unwrap(e)
	}

	// Create or re-tag nodes.
	dirty := changes.Set(component.KindDOMElement)
	for _, e := range dirty {
		if !s.world.Alive(e) {
			continue
		}
		el, ok := ecs.Lookup[component.DOMElement](s.world, e)
		if !ok {
			continue
		}
		ent, exists := s.index.lookup(e)
		if exists {
			if ent.node.Tag() == el.Tag {
				continue
			}
			if err := s.retag(e, ent, el.Tag); err != nil {
				return err
			}
			continue
		}
		node, err := s.ext.Document.CreateElement(el.Tag)
		if err != nil {
			return fmt.Errorf("element system: create %q: %w", el.Tag, err)
		}
		s.index.put(e, node)
		s.ext.Log.Debug("node created",
			zap.Uint64("entity", uint64(e)), zap.String("tag", el.Tag))
	}

	// Attach pass, after all creations so parents created in this same
	// flush are already mapped.
	for _, e := range dirty {
		ent, ok := s.index.lookup(e)
		if !ok || ent.parent != nil {
			continue
		}
		parent := s.parentNode(e)
		parent.AppendChild(ent.node)
		ent.parent = parent
		s.adopt(e, ent.node)
	}
	return nil
}

// adopt re-homes descendant nodes that were mounted higher up while
// this entity had no node of its own: the inverse of unwrap. Recursion
// stops at mapped descendants, whose own subtrees are already nested
// correctly.
func (s *ElementSystem) adopt(e ecs.EntityID, node host.Node) {
	for _, c := range s.world.Children(e) {
		if ent, ok := s.index.lookup(c); ok {
			if ent.parent != nil && ent.parent != node {
				node.AppendChild(ent.node)
				ent.parent = node
			}
			continue
		}
		s.adopt(c, node)
	}
}

// parentNode climbs the entity tree to the nearest ancestor with a
// mapped node; root entities (and orphaned chains) mount on Root.
func (s *ElementSystem) parentNode(e ecs.EntityID) host.Node {
	for p := s.world.Parent(e); !p.IsZero(); p = s.world.Parent(p) {
		if ent, ok := s.index.lookup(p); ok {
			return ent.node
		}
	}
	return s.ext.Root
}

// retag swaps the entity's node for a freshly tagged one, carrying over
// child nodes and the attach position. Text, classes, attributes, and
// listeners are re-applied by the later-phase systems via the fresh set.
func (s *ElementSystem) retag(e ecs.EntityID, ent *entry, tag string) error {
	node, err := s.ext.Document.CreateElement(tag)
	if err != nil {
		return fmt.Errorf("element system: re-tag %q: %w", tag, err)
	}
	for _, c := range ent.node.Children() {
		node.AppendChild(c)
	}
	if ent.parent != nil {
		ent.parent.ReplaceChild(node, ent.node)
	}
	s.index.reparent(ent.node, node)
	ent.node = node
	s.index.fresh = append(s.index.fresh, e)
	return nil
}

// unwrap detaches the entity's node and hoists its children to the
// node's own parent, so descendant entities stay mounted.
func (s *ElementSystem) unwrap(e ecs.EntityID) {
	ent, ok := s.index.lookup(e)
	if !ok {
		return
	}
	if ent.parent != nil {
		for _, c := range ent.node.Children() {
			ent.parent.AppendChild(c)
		}
		ent.parent.RemoveChild(ent.node)
	}
	s.index.reparent(ent.node, ent.parent)
	s.index.purge(e)
}
