package ecs

// Kind names a component type. The closed set of kinds lives in the
// component package; the core treats kinds as opaque map keys.
type Kind string

// Component is pure data attached to one entity. At most one value per
// kind per entity; adding a second value of the same kind overwrites.
// All mutation happens in World methods and systems, never on components.
type Component interface {
	ComponentKind() Kind
}

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store holds every value of a single component kind, keyed by entity.
type Store struct {
	kind Kind
	data map[EntityID]Component
}

func NewStore(kind Kind) *Store {
	return &Store{
		kind: kind,
		data: make(map[EntityID]Component, 64),
	}
}

func (s *Store) Kind() Kind {
	return s.kind
}

func (s *Store) Set(id EntityID, c Component) {
	s.data[id] = c
}

func (s *Store) Get(id EntityID) (Component, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.data)
}

func (s *Store) Each(fn func(EntityID, Component)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
