package component

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domforge/domforge/internal/core/ecs"
)

// ErrValidation reports a malformed factory payload.
var ErrValidation = errors.New("invalid component payload")

// Factory builds a component from untyped props, as delivered by the
// scene materializer and the Lua bridge.
type Factory func(props map[string]any) (ecs.Component, error)

var factories = map[ecs.Kind]Factory{
	KindDOMElement: func(props map[string]any) (ecs.Component, error) {
		tag, err := stringProp(props, "tag")
		if err != nil {
			return nil, err
		}
		return NewDOMElement(tag)
	},
	KindTextContent: func(props map[string]any) (ecs.Component, error) {
		value, err := stringProp(props, "value")
		if err != nil {
			return nil, err
		}
		return NewTextContent(value), nil
	},
	KindClasses: func(props map[string]any) (ecs.Component, error) {
		list, err := stringListProp(props, "list")
		if err != nil {
			return nil, err
		}
		return NewClasses(list...)
	},
	KindClickable: func(map[string]any) (ecs.Component, error) {
		return NewClickable(), nil
	},
	KindSelection: func(props map[string]any) (ecs.Component, error) {
		value, err := stringProp(props, "value")
		if err != nil {
			return nil, err
		}
		return NewSelection(value)
	},
	KindValue: func(props map[string]any) (ecs.Component, error) {
		of, err := stringProp(props, "of")
		if err != nil {
			return nil, err
		}
		return NewValue(of)
	},
	KindRadio: func(map[string]any) (ecs.Component, error) {
		return NewRadio(), nil
	},
	KindName: func(props map[string]any) (ecs.Component, error) {
		value, err := stringProp(props, "value")
		if err != nil {
			return nil, err
		}
		return NewName(value)
	},
}

// Known reports whether kind has a registered factory.
func Known(kind ecs.Kind) bool {
	_, ok := factories[kind]
	return ok
}

// Kinds returns every registered kind.
func Kinds() []ecs.Kind {
	out := make([]ecs.Kind, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	return out
}

// Build constructs a component of the given kind from untyped props.
func Build(kind ecs.Kind, props map[string]any) (ecs.Component, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("component kind %q: %w", kind, ErrValidation)
	}
	return f(props)
}

func stringProp(props map[string]any, key string) (string, error) {
	v, ok := props[key]
	if !ok {
		return "", fmt.Errorf("missing prop %q: %w", key, ErrValidation)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("prop %q: want string, got %T: %w", key, v, ErrValidation)
	}
	return s, nil
}

// stringListProp accepts []string, []any of strings, or one
// space-separated string.
func stringListProp(props map[string]any, key string) ([]string, error) {
	v, ok := props[key]
	if !ok {
		return nil, fmt.Errorf("missing prop %q: %w", key, ErrValidation)
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("prop %q: want string items, got %T: %w", key, item, ErrValidation)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		return strings.Fields(list), nil
	default:
		return nil, fmt.Errorf("prop %q: want string list, got %T: %w", key, v, ErrValidation)
	}
}
