package system

import (
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/host"
)

// entry tracks one live host node: the node itself and the host parent
// it is attached under (nil while detached).
type entry struct {
	node   host.Node
	parent host.Node
}

// Index is the retained entity→node mapping shared by the DOM systems.
// It survives across flushes so updates mutate existing nodes instead of
// recreating them. fresh holds entities whose node was created or
// replaced during the current flush, so sync systems re-apply their
// state to the new node; the element system clears it at flush start.
type Index struct {
	entries map[ecs.EntityID]*entry
	fresh   []ecs.EntityID
}

func NewIndex() *Index {
	return &Index{
		entries: make(map[ecs.EntityID]*entry, 64),
	}
}

// Node returns the host node mapped to the entity.
func (ix *Index) Node(e ecs.EntityID) (host.Node, bool) {
	ent, ok := ix.entries[e]
	if !ok {
		return nil, false
	}
	return ent.node, true
}

func (ix *Index) Len() int {
	return len(ix.entries)
}

// Fresh returns the entities whose node is new in this flush.
func (ix *Index) Fresh() []ecs.EntityID {
	return ix.fresh
}

func (ix *Index) lookup(e ecs.EntityID) (*entry, bool) {
	ent, ok := ix.entries[e]
	return ent, ok
}

func (ix *Index) put(e ecs.EntityID, n host.Node) *entry {
	ent := &entry{node: n}
	ix.entries[e] = ent
	ix.fresh = append(ix.fresh, e)
	return ent
}

func (ix *Index) purge(e ecs.EntityID) {
	delete(ix.entries, e)
}

func (ix *Index) clearFresh() {
	ix.fresh = ix.fresh[:0]
}

// reparent updates attach book-keeping for entries whose host parent was
// the old node (used when a node is replaced or unwrapped).
func (ix *Index) reparent(old, now host.Node) {
	for _, ent := range ix.entries {
		if ent.parent == old {
			ent.parent = now
		}
	}
}
