package system

import "github.com/domforge/domforge/internal/core/ecs"

// dirtyWith returns the entities a sync system must visit for kind:
// those whose component of that kind changed this flush, plus those with
// a fresh node that already hold the component (so new or re-tagged
// nodes get the full state re-applied).
func dirtyWith(w *ecs.World, ix *Index, kind ecs.Kind) []ecs.EntityID {
	out := w.Changes().Set(kind)
	seen := make(map[ecs.EntityID]struct{}, len(out))
	for _, e := range out {
		seen[e] = struct{}{}
	}
	for _, e := range ix.Fresh() {
		if _, dup := seen[e]; dup {
			continue
		}
		if w.Has(e, kind) {
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}
