package ecs

import (
	"fmt"

	coresys "github.com/domforge/domforge/internal/core/system"
	"github.com/domforge/domforge/internal/host"
)

// World is the top-level container. It owns the entity pool, the component
// registry, the parent/child index, the pending changeset, and the system
// runner; it references (never owns) the injected host externals.
//
// A World is affine to a single goroutine: every mutation and Flush runs
// to completion before returning, and there is no internal locking.
type World struct {
	pool     *EntityPool
	registry *Registry
	parents  map[EntityID]EntityID
	children map[EntityID][]EntityID
	roots    []EntityID
	runner   *coresys.Runner
	ext      host.Externals
	pending  Changeset
}

// NewWorld constructs a World around the given host capability set.
func NewWorld(ext host.Externals) (*World, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	ext.Log = ext.Logger()
	return &World{
		pool:     NewEntityPool(),
		registry: NewRegistry(),
		parents:  make(map[EntityID]EntityID, 64),
		children: make(map[EntityID][]EntityID, 64),
		roots:    make([]EntityID, 0, 8),
		runner:   coresys.NewRunner(),
		ext:      ext,
	}, nil
}

// Externals exposes the injected host capability set to systems.
func (w *World) Externals() host.Externals {
	return w.ext
}

// RegisterSystem adds a system to the flush runner.
func (w *World) RegisterSystem(s coresys.System) {
	w.runner.Register(s)
}

// Changes exposes the pending changeset. Systems read it during Flush.
func (w *World) Changes() *Changeset {
	return &w.pending
}

// CreateEntity allocates a fresh entity. A zero parent makes it a root;
// otherwise parent must be alive in this World.
func (w *World) CreateEntity(parent EntityID) (EntityID, error) {
	if !parent.IsZero() && !w.pool.Alive(parent) {
		return 0, fmt.Errorf("create entity under %d: %w", parent, ErrInvalidParent)
	}
	e := w.pool.Create()
	if parent.IsZero() {
		w.roots = append(w.roots, e)
	} else {
		w.parents[e] = parent
		w.children[parent] = append(w.children[parent], e)
	}
	w.pending.record(Mutation{Op: MutSpawn, Entity: e})
	return e, nil
}

// Add inserts or overwrites the component for its kind on the entity.
// A failed Add leaves the World unchanged.
func (w *World) Add(e EntityID, c Component) error {
	if !w.pool.Alive(e) {
		return fmt.Errorf("add %s to %d: %w", c.ComponentKind(), e, ErrUnknownEntity)
	}
	w.registry.Store(c.ComponentKind()).Set(e, c)
	w.pending.record(Mutation{Op: MutSet, Entity: e, Kind: c.ComponentKind()})
	return nil
}

// RemoveComponent deletes a component kind from an entity. Removing a
// kind the entity does not hold is a no-op.
func (w *World) RemoveComponent(e EntityID, kind Kind) error {
	if !w.pool.Alive(e) {
		return fmt.Errorf("remove %s from %d: %w", kind, e, ErrUnknownEntity)
	}
	s, ok := w.registry.Lookup(kind)
	if !ok || !s.Has(e) {
		return nil
	}
	s.Remove(e)
	w.pending.record(Mutation{Op: MutUnset, Entity: e, Kind: kind})
	return nil
}

// DestroyEntity removes the entity, its components, and its whole
// subtree, depth-first. Each destroyed entity is recorded so the cleanup
// system can detach its host node on the next flush.
func (w *World) DestroyEntity(e EntityID) error {
	if !w.pool.Alive(e) {
		return fmt.Errorf("destroy %d: %w", e, ErrUnknownEntity)
	}
	parent := w.parents[e]
	if parent.IsZero() {
		w.roots = removeID(w.roots, e)
	} else {
		w.children[parent] = removeID(w.children[parent], e)
		delete(w.parents, e)
	}
	w.destroySubtree(e)
	return nil
}

func (w *World) destroySubtree(e EntityID) {
	kids := w.children[e]
	delete(w.children, e)
	for _, c := range kids {
		delete(w.parents, c)
		w.destroySubtree(c)
	}
	w.registry.RemoveAll(e)
	w.pool.Destroy(e)
	w.pending.record(Mutation{Op: MutDestroy, Entity: e})
}

// Get returns the entity's component of the given kind.
func (w *World) Get(e EntityID, kind Kind) (Component, bool) {
	if !w.pool.Alive(e) {
		return nil, false
	}
	s, ok := w.registry.Lookup(kind)
	if !ok {
		return nil, false
	}
	return s.Get(e)
}

// Has reports whether the entity holds a component of the given kind.
func (w *World) Has(e EntityID, kind Kind) bool {
	_, ok := w.Get(e, kind)
	return ok
}

func (w *World) Alive(e EntityID) bool {
	return w.pool.Alive(e)
}

// Parent returns the entity's parent, or the zero EntityID for roots.
func (w *World) Parent(e EntityID) EntityID {
	return w.parents[e]
}

// Children returns a copy of the entity's direct children, in creation order.
func (w *World) Children(e EntityID) []EntityID {
	return append([]EntityID(nil), w.children[e]...)
}

// Roots returns a copy of the root entities, in creation order.
func (w *World) Roots() []EntityID {
	return append([]EntityID(nil), w.roots...)
}

// Flush runs every registered system once, in phase order, against the
// current state, then clears the pending changeset. A failing system
// aborts the remaining systems and propagates; the changeset is retained
// so a retried Flush sees the full pending set. The host tree may be
// left partially updated on error.
func (w *World) Flush() error {
	if err := w.runner.Flush(); err != nil {
		return err
	}
	w.pending.reset()
	return nil
}

func removeID(s []EntityID, e EntityID) []EntityID {
	for i, cur := range s {
		if cur == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
