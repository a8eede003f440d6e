// Package widget builds interactive entity trees on top of the engine
// primitives. The radio group is the reference widget: bundles shape the
// tree, the click pipeline drives Selection, and a logic-phase system
// reflects Selection back into option classes.
package widget

import (
	"fmt"

	"github.com/domforge/domforge/internal/bundle"
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/core/event"
	"github.com/domforge/domforge/internal/scene"
)

// SelectedClass is toggled on option nodes by the selection system.
const SelectedClass = "selected"

// RegisterRadioSystems wires radio behavior onto the world: the click
// subscriber that moves Selection, the logic-phase system that syncs
// option classes, and the radio bundles as scene tags.
func RegisterRadioSystems(w *ecs.World, bus *event.Bus) {
	scene.RegisterBundle(bundle.RadioOption)
	scene.RegisterBundle(bundle.RadioGroup)
	w.RegisterSystem(NewSelectionSystem(w))

	event.Subscribe(bus, func(ev event.ClickEvent) error {
		return handleOptionClick(w, bus, ev)
	})
}

// NewRadioGroup builds a radio group entity under parent with one option
// entity per value, using the radio bundles.
func NewRadioGroup(w *ecs.World, parent ecs.EntityID, name string, values []string) (ecs.EntityID, error) {
	group, err := w.CreateEntity(parent)
	if err != nil {
		return 0, err
	}
	if err := bundle.Apply(w, group, bundle.RadioGroup, bundle.Params{"name": name}); err != nil {
		return 0, err
	}
	for _, v := range values {
		opt, err := w.CreateEntity(group)
		if err != nil {
			return 0, err
		}
		if err := bundle.Apply(w, opt, bundle.RadioOption, bundle.Params{"value": v}); err != nil {
			return 0, err
		}
		if err := w.Add(opt, component.NewTextContent(v)); err != nil {
			return 0, err
		}
	}
	return group, nil
}

// handleOptionClick moves the enclosing group's Selection to the clicked
// option's value. Clicks on non-option entities are ignored.
func handleOptionClick(w *ecs.World, bus *event.Bus, ev event.ClickEvent) error {
	val, ok := ecs.Lookup[component.Value](w, ev.Entity)
	if !ok {
		return nil
	}
	group, ok := enclosingGroup(w, ev.Entity)
	if !ok {
		return nil
	}
	if cur, ok := ecs.Lookup[component.Selection](w, group); ok && cur.Value == val.Of {
		return nil // already selected
	}
	sel, err := component.NewSelection(val.Of)
	if err != nil {
		return fmt.Errorf("radio: selection %q: %w", val.Of, err)
	}
	if err := w.Add(group, sel); err != nil {
		return fmt.Errorf("radio: select %q: %w", val.Of, err)
	}
	event.Emit(bus, event.SelectionChanged{Group: group, Value: val.Of})
	return nil
}

func enclosingGroup(w *ecs.World, e ecs.EntityID) (ecs.EntityID, bool) {
	for p := w.Parent(e); !p.IsZero(); p = w.Parent(p) {
		if w.Has(p, component.KindRadio) {
			return p, true
		}
	}
	return 0, false
}
