// Package system contains the reconciliation systems that turn entity and
// component state into host-tree mutations on every flush.
package system

import (
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/core/event"
)

// RegisterDOMSystems wires the full reconciliation pipeline onto the
// world: event dispatch, structure, sync, listener wiring, cleanup.
// Registration order within a phase is execution order. The returned
// Index is the retained entity→node mapping, exposed for callers that
// inspect or render it.
func RegisterDOMSystems(w *ecs.World, bus *event.Bus) *Index {
	ix := NewIndex()
	w.RegisterSystem(NewClickDispatchSystem(bus))
	w.RegisterSystem(NewElementSystem(w, ix))
	w.RegisterSystem(NewTextSystem(w, ix))
	w.RegisterSystem(NewClassSystem(w, ix))
	w.RegisterSystem(NewAttributeSystem(w, ix))
	w.RegisterSystem(NewClickableSystem(w, ix, bus))
	w.RegisterSystem(NewDetachSystem(w, ix))
	return ix
}
