package system

import (
	"github.com/domforge/domforge/internal/core/event"
	coresys "github.com/domforge/domforge/internal/core/system"
)

// ClickDispatchSystem swaps the event-bus buffers at flush start and
// delivers everything the host emitted since the last flush. Handler
// mutations land in the current changeset, so the structure and sync
// systems pick them up in this same flush.
type ClickDispatchSystem struct {
	bus *event.Bus
}

func NewClickDispatchSystem(bus *event.Bus) *ClickDispatchSystem {
	return &ClickDispatchSystem{bus: bus}
}

func (s *ClickDispatchSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *ClickDispatchSystem) Update() error {
	s.bus.SwapBuffers()
	return s.bus.DispatchAll()
}
