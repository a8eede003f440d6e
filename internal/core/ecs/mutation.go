package ecs

// MutationOp tags a single recorded world change.
type MutationOp uint8

const (
	MutSpawn   MutationOp = iota // entity created
	MutSet                       // component added or overwritten
	MutUnset                     // component removed
	MutDestroy                   // entity destroyed
)

// Mutation is one recorded change. Kind is set for MutSet and MutUnset.
type Mutation struct {
	Op     MutationOp
	Entity EntityID
	Kind   Kind
}

// Changeset is the ordered record of world changes since the last
// successful flush. The world's component maps are the real buffer; the
// changeset only tells systems what is dirty so they never walk the
// whole world. It is cleared when Flush completes without error.
type Changeset struct {
	muts []Mutation
}

func (c *Changeset) record(m Mutation) {
	c.muts = append(c.muts, m)
}

func (c *Changeset) reset() {
	c.muts = c.muts[:0]
}

func (c *Changeset) Len() int {
	return len(c.muts)
}

func (c *Changeset) Empty() bool {
	return len(c.muts) == 0
}

// All returns the raw mutation records in order.
func (c *Changeset) All() []Mutation {
	return c.muts
}

// Set returns the entities whose component of the given kind was added
// or overwritten, deduplicated, in first-occurrence order.
func (c *Changeset) Set(kind Kind) []EntityID {
	return c.collect(MutSet, kind)
}

// Unset returns the entities whose component of the given kind was removed.
func (c *Changeset) Unset(kind Kind) []EntityID {
	return c.collect(MutUnset, kind)
}

// Spawned returns the entities created since the last flush.
func (c *Changeset) Spawned() []EntityID {
	return c.collectOp(MutSpawn)
}

// Destroyed returns the entities destroyed since the last flush,
// subtrees included.
func (c *Changeset) Destroyed() []EntityID {
	return c.collectOp(MutDestroy)
}

func (c *Changeset) collect(op MutationOp, kind Kind) []EntityID {
	var out []EntityID
	var seen map[EntityID]struct{}
	for _, m := range c.muts {
		if m.Op != op || m.Kind != kind {
			continue
		}
		if _, dup := seen[m.Entity]; dup {
			continue
		}
		if seen == nil {
			seen = make(map[EntityID]struct{}, 8)
		}
		seen[m.Entity] = struct{}{}
		out = append(out, m.Entity)
	}
	return out
}

func (c *Changeset) collectOp(op MutationOp) []EntityID {
	var out []EntityID
	for _, m := range c.muts {
		if m.Op == op {
			out = append(out, m.Entity)
		}
	}
	return out
}
