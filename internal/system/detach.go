package system

import (
	"go.uber.org/zap"

	"github.com/domforge/domforge/internal/core/ecs"
	coresys "github.com/domforge/domforge/internal/core/system"
	"github.com/domforge/domforge/internal/host"
)

// DetachSystem removes the nodes of destroyed entities from the host
// tree and purges their index entries. Runs last in the flush.
type DetachSystem struct {
	world *ecs.World
	ext   host.Externals
	index *Index
}

func NewDetachSystem(world *ecs.World, index *Index) *DetachSystem {
	return &DetachSystem{world: world, ext: world.Externals(), index: index}
}

func (s *DetachSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *DetachSystem) Update() error {
	destroyed := s.world.Changes().Destroyed()
	if len(destroyed) == 0 {
		return nil
	}
	gone := make(map[ecs.EntityID]struct{}, len(destroyed))
	for _, e := range destroyed {
		gone[e] = struct{}{}
	}
	for _, e := range destroyed {
		ent, ok := s.index.lookup(e)
		if !ok {
			continue
		}
		// Detaching the topmost destroyed node takes its subtree with it;
		// skip the host call when an ancestor entity is going too.
		if ent.parent != nil && !s.ancestorDestroyed(e, gone) {
			ent.parent.RemoveChild(ent.node)
		}
		s.index.purge(e)
	}
	s.ext.Log.Debug("nodes detached", zap.Int("count", len(destroyed)))
	return nil
}

func (s *DetachSystem) ancestorDestroyed(e ecs.EntityID, gone map[ecs.EntityID]struct{}) bool {
	// The entity tree link is already severed for destroyed entities, so
	// walk the index's attach book-keeping instead: find the entity whose
	// node is our attach parent.
	ent, ok := s.index.lookup(e)
	if !ok || ent.parent == nil {
		return false
	}
	for other, oent := range s.index.entries {
		if oent.node == ent.parent {
			_, dead := gone[other]
			return dead
		}
	}
	return false
}
