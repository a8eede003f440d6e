// Package scene translates declarative entity trees into worlds. A tree
// is plain recursive data (tag, props, children) independent of where it
// came from — Go literals, YAML documents, or the Lua bridge all produce
// the same Node shape before Materialize runs.
package scene

import (
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
)

// TagEntity marks a node that becomes one entity; every other recognized
// tag is a component kind or a registered bundle attached to the
// enclosing entity.
const TagEntity = "entity"

// Node is one element of a declarative tree.
type Node struct {
	Tag      string
	Props    map[string]any
	Children []*Node
}

// Entity builds an entity node.
func Entity(children ...*Node) *Node {
	return &Node{Tag: TagEntity, Children: children}
}

// Component builds a component-tag node.
func Component(kind ecs.Kind, props map[string]any) *Node {
	return &Node{Tag: string(kind), Props: props}
}

// Element is shorthand for a dom_element component node.
func Element(tag string) *Node {
	return Component(component.KindDOMElement, map[string]any{"tag": tag})
}

// Text is shorthand for a text_content component node.
func Text(value string) *Node {
	return Component(component.KindTextContent, map[string]any{"value": value})
}

// ClassList is shorthand for a classes component node.
func ClassList(list ...string) *Node {
	return Component(component.KindClasses, map[string]any{"list": list})
}

// Click is shorthand for a clickable component node.
func Click() *Node {
	return Component(component.KindClickable, nil)
}
