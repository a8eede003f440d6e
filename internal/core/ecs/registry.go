package ecs

// Registry tracks one store per component kind and supports bulk cleanup
// on entity destroy. Stores are created lazily on first write.
type Registry struct {
	stores map[Kind]*Store
}

func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[Kind]*Store, 16),
	}
}

// Store returns the store for kind, creating it if needed.
func (r *Registry) Store(kind Kind) *Store {
	s, ok := r.stores[kind]
	if !ok {
		s = NewStore(kind)
		r.stores[kind] = s
	}
	return s
}

// Lookup returns the store for kind without creating one.
func (r *Registry) Lookup(kind Kind) (*Store, bool) {
	s, ok := r.stores[kind]
	return s, ok
}

// RemoveAll clears the given entity from every registered store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}
