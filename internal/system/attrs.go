package system

import (
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	coresys "github.com/domforge/domforge/internal/core/system"
)

// AttributeSystem reflects form-shaped components as node attributes:
// Name becomes a name attribute, Value a data-value attribute.
type AttributeSystem struct {
	world *ecs.World
	index *Index
}

func NewAttributeSystem(world *ecs.World, index *Index) *AttributeSystem {
	return &AttributeSystem{world: world, index: index}
}

func (s *AttributeSystem) Phase() coresys.Phase { return coresys.PhaseSync }

func (s *AttributeSystem) Update() error {
	for _, e := range dirtyWith(s.world, s.index, component.KindName) {
		node, ok := s.index.Node(e)
		if !ok {
			continue
		}
		if n, ok := ecs.Lookup[component.Name](s.world, e); ok {
			node.SetAttribute("name", n.Value)
		}
	}
	for _, e := range dirtyWith(s.world, s.index, component.KindValue) {
		node, ok := s.index.Node(e)
		if !ok {
			continue
		}
		if v, ok := ecs.Lookup[component.Value](s.world, e); ok {
			node.SetAttribute("data-value", v.Of)
		}
	}
	changes := s.world.Changes()
	for _, e := range changes.Unset(component.KindName) {
		if node, ok := s.index.Node(e); ok {
			node.RemoveAttribute("name")
		}
	}
	for _, e := range changes.Unset(component.KindValue) {
		if node, ok := s.index.Node(e); ok {
			node.RemoveAttribute("data-value")
		}
	}
	return nil
}
