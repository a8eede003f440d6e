package system

import (
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	coresys "github.com/domforge/domforge/internal/core/system"
)

// ClassSystem synchronizes the Classes list onto the node wholesale.
type ClassSystem struct {
	world *ecs.World
	index *Index
}

func NewClassSystem(world *ecs.World, index *Index) *ClassSystem {
	return &ClassSystem{world: world, index: index}
}

func (s *ClassSystem) Phase() coresys.Phase { return coresys.PhaseSync }

func (s *ClassSystem) Update() error {
	for _, e := range dirtyWith(s.world, s.index, component.KindClasses) {
		node, ok := s.index.Node(e)
		if !ok {
			continue
		}
		cl, ok := ecs.Lookup[component.Classes](s.world, e)
		if !ok {
			continue
		}
		node.SetClasses(cl.List)
	}
	for _, e := range s.world.Changes().Unset(component.KindClasses) {
		if node, ok := s.index.Node(e); ok {
			node.SetClasses(nil)
		}
	}
	return nil
}
