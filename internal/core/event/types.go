package event

import "github.com/domforge/domforge/internal/core/ecs"

// ClickEvent fires when the host clicks the node of a Clickable entity.
type ClickEvent struct {
	Entity ecs.EntityID
}

// SelectionChanged fires after a group entity's Selection component moved
// to a new value.
type SelectionChanged struct {
	Group ecs.EntityID
	Value string
}
