package widget

import (
	"slices"

	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	coresys "github.com/domforge/domforge/internal/core/system"
)

// SelectionSystem reflects a group's Selection onto its option entities:
// the option whose Value matches gains the selected class, every other
// option loses it. Runs in the logic phase, before class sync, so the
// class mutations land in the same flush.
type SelectionSystem struct {
	world *ecs.World
}

func NewSelectionSystem(world *ecs.World) *SelectionSystem {
	return &SelectionSystem{world: world}
}

func (s *SelectionSystem) Phase() coresys.Phase { return coresys.PhaseLogic }

func (s *SelectionSystem) Update() error {
	for _, group := range s.world.Changes().Set(component.KindSelection) {
		sel, ok := ecs.Lookup[component.Selection](s.world, group)
		if !ok {
			continue
		}
		s.syncOptions(group, sel.Value)
	}
	return nil
}

func (s *SelectionSystem) syncOptions(e ecs.EntityID, selected string) {
	for _, child := range s.world.Children(e) {
		if val, ok := ecs.Lookup[component.Value](s.world, child); ok {
			s.toggleSelected(child, val.Of == selected)
		}
		s.syncOptions(child, selected)
	}
}

func (s *SelectionSystem) toggleSelected(option ecs.EntityID, want bool) {
	var list []string
	if cl, ok := ecs.Lookup[component.Classes](s.world, option); ok {
		list = cl.List
	}
	has := slices.Contains(list, SelectedClass)
	if has == want {
		return
	}
	var next []string
	if want {
		next = append(append(next, list...), SelectedClass)
	} else {
		for _, c := range list {
			if c != SelectedClass {
				next = append(next, c)
			}
		}
	}
	// Tokens were validated when the component was first built; the only
	// token added here is SelectedClass.
	_ = s.world.Add(option, component.Classes{List: next})
}
