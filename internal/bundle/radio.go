package bundle

import (
	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
)

// RadioOption expands {value: v} into a clickable label entity carrying
// the option value: [DOMElement(label), Clickable, Value(v)], in that order.
var RadioOption = Define("radio_option", func(p Params) ([]ecs.Component, error) {
	value, err := p.String("value")
	if err != nil {
		return nil, err
	}
	el, err := component.NewDOMElement("label")
	if err != nil {
		return nil, err
	}
	val, err := component.NewValue(value)
	if err != nil {
		return nil, err
	}
	return []ecs.Component{el, component.NewClickable(), val}, nil
})

// RadioGroup expands {name: n} into the group container:
// [DOMElement(div), Radio, Name(n)].
var RadioGroup = Define("radio_group", func(p Params) ([]ecs.Component, error) {
	name, err := p.String("name")
	if err != nil {
		return nil, err
	}
	el, err := component.NewDOMElement("div")
	if err != nil {
		return nil, err
	}
	n, err := component.NewName(name)
	if err != nil {
		return nil, err
	}
	return []ecs.Component{el, component.NewRadio(), n}, nil
})
