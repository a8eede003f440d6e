package ecs

import "errors"

var (
	// ErrUnknownEntity reports an operation referencing an entity that is
	// not alive in this World.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrInvalidParent reports a CreateEntity parent that is not alive in
	// this World.
	ErrInvalidParent = errors.New("invalid parent entity")
)
