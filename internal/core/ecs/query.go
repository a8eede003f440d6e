package ecs

// Lookup returns entity e's component of T's kind, typed. The kind is
// taken from T's zero value, so component types must implement
// ComponentKind on the value receiver.
func Lookup[T Component](w *World, e EntityID) (T, bool) {
	var zero T
	c, ok := w.Get(e, zero.ComponentKind())
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}
