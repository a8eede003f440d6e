package system

import (
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	coresys "github.com/domforge/domforge/internal/core/system"
)

// TextSystem mirrors TextContent onto the mapped node's text.
type TextSystem struct {
	world *ecs.World
	index *Index
}

func NewTextSystem(world *ecs.World, index *Index) *TextSystem {
	return &TextSystem{world: world, index: index}
}

func (s *TextSystem) Phase() coresys.Phase { return coresys.PhaseSync }

func (s *TextSystem) Update() error {
	for _, e := range dirtyWith(s.world, s.index, component.KindTextContent) {
		node, ok := s.index.Node(e)
		if !ok {
			continue // text on an entity without a node; applied once one exists
		}
		tc, ok := ecs.Lookup[component.TextContent](s.world, e)
		if !ok {
			continue
		}
		node.SetText(tc.Value)
	}
	for _, e := range s.world.Changes().Unset(component.KindTextContent) {
		if node, ok := s.index.Node(e); ok {
			node.SetText("")
		}
	}
	return nil
}
