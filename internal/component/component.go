// Package component defines the closed set of component kinds the DOM
// systems understand. Components are pure data, zero methods beyond the
// kind tag — all behavior lives in systems. Factories validate payloads
// at the boundary so systems can trust what they read.
package component

import (
	"fmt"
	"strings"

	"github.com/domforge/domforge/internal/core/ecs"
)

const (
	KindDOMElement  ecs.Kind = "dom_element"
	KindTextContent ecs.Kind = "text_content"
	KindClasses     ecs.Kind = "classes"
	KindClickable   ecs.Kind = "clickable"
	KindSelection   ecs.Kind = "selection"
	KindValue       ecs.Kind = "value"
	KindRadio       ecs.Kind = "radio"
	KindName        ecs.Kind = "name"
)

// DOMElement makes an entity visible: the element system creates one host
// node per entity holding it, tagged with Tag.
type DOMElement struct {
	Tag string
}

func (DOMElement) ComponentKind() ecs.Kind { return KindDOMElement }

func NewDOMElement(tag string) (DOMElement, error) {
	if !validTag(tag) {
		return DOMElement{}, fmt.Errorf("dom_element tag %q: %w", tag, ErrValidation)
	}
	return DOMElement{Tag: tag}, nil
}

// TextContent sets the node's text.
type TextContent struct {
	Value string
}

func (TextContent) ComponentKind() ecs.Kind { return KindTextContent }

func NewTextContent(value string) TextContent {
	return TextContent{Value: value}
}

// Classes is the node's class list, synchronized wholesale.
type Classes struct {
	List []string
}

func (Classes) ComponentKind() ecs.Kind { return KindClasses }

func NewClasses(list ...string) (Classes, error) {
	for _, c := range list {
		if c == "" || strings.ContainsAny(c, " \t\n") {
			return Classes{}, fmt.Errorf("class token %q: %w", c, ErrValidation)
		}
	}
	return Classes{List: append([]string(nil), list...)}, nil
}

// Clickable marks an entity as click-interactive; the clickable system
// wires one listener on its node which emits a ClickEvent.
type Clickable struct{}

func (Clickable) ComponentKind() ecs.Kind { return KindClickable }

func NewClickable() Clickable {
	return Clickable{}
}

// Selection holds the currently selected value on a group entity.
type Selection struct {
	Value string
}

func (Selection) ComponentKind() ecs.Kind { return KindSelection }

func NewSelection(value string) (Selection, error) {
	if value == "" {
		return Selection{}, fmt.Errorf("selection value: %w", ErrValidation)
	}
	return Selection{Value: value}, nil
}

// Value tags an option entity with the value it stands for.
type Value struct {
	Of string
}

func (Value) ComponentKind() ecs.Kind { return KindValue }

func NewValue(of string) (Value, error) {
	if of == "" {
		return Value{}, fmt.Errorf("value of: %w", ErrValidation)
	}
	return Value{Of: of}, nil
}

// Radio marks a group entity as a radio group.
type Radio struct{}

func (Radio) ComponentKind() ecs.Kind { return KindRadio }

func NewRadio() Radio {
	return Radio{}
}

// Name gives a group entity its form name, reflected as a name attribute.
type Name struct {
	Value string
}

func (Name) ComponentKind() ecs.Kind { return KindName }

func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, fmt.Errorf("name value: %w", ErrValidation)
	}
	return Name{Value: value}, nil
}

// validTag accepts lowercase element names: a letter followed by
// letters, digits, or hyphens.
func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}
