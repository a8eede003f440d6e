package system

import (
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/core/event"
	coresys "github.com/domforge/domforge/internal/core/system"
	"github.com/domforge/domforge/internal/host"
)

// ClickableSystem wires exactly one click listener per (entity, node)
// pair. The listener emits a ClickEvent into the bus; delivery happens
// on the next flush via the dispatch system.
type ClickableSystem struct {
	world *ecs.World
	index *Index
	bus   *event.Bus
	wired map[ecs.EntityID]host.Node
}

func NewClickableSystem(world *ecs.World, index *Index, bus *event.Bus) *ClickableSystem {
	return &ClickableSystem{
		world: world,
		index: index,
		bus:   bus,
		wired: make(map[ecs.EntityID]host.Node, 16),
	}
}

func (s *ClickableSystem) Phase() coresys.Phase { return coresys.PhaseEvents }

func (s *ClickableSystem) Update() error {
	for _, e := range dirtyWith(s.world, s.index, component.KindClickable) {
		node, ok := s.index.Node(e)
		if !ok {
			continue
		}
		if s.wired[e] == node {
			continue // already wired on this node
		}
		entity := e
		node.AddClickListener(func() {
			event.Emit(s.bus, event.ClickEvent{Entity: entity})
		})
		s.wired[e] = node
	}
	changes := s.world.Changes()
	for _, e := range changes.Unset(component.KindClickable) {
		if node, ok := s.index.Node(e); ok {
			node.ClearClickListeners()
		}
		delete(s.wired, e)
	}
	for _, e := range changes.Destroyed() {
		delete(s.wired, e)
	}
	return nil
}
