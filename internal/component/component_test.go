package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDOMElementTagValidation(t *testing.T) {
	for _, tag := range []string{"div", "h3", "my-widget", "label"} {
		_, err := NewDOMElement(tag)
		assert.NoError(t, err, tag)
	}
	for _, tag := range []string{"", "DIV", "3d", "-x", "a b", "sp&n"} {
		_, err := NewDOMElement(tag)
		assert.ErrorIs(t, err, ErrValidation, tag)
	}
}

func TestNewClassesRejectsBadTokens(t *testing.T) {
	_, err := NewClasses("page", "selected")
	require.NoError(t, err)

	for _, token := range []string{"", "two words", "tab\tbed"} {
		_, err := NewClasses(token)
		assert.ErrorIs(t, err, ErrValidation, token)
	}
}

func TestNewClassesCopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	cl, err := NewClasses(src...)
	require.NoError(t, err)
	src[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, cl.List)
}

func TestEmptyValuesRejected(t *testing.T) {
	_, err := NewSelection("")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewValue("")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewName("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildKnownKinds(t *testing.T) {
	c, err := Build(KindDOMElement, map[string]any{"tag": "div"})
	require.NoError(t, err)
	assert.Equal(t, DOMElement{Tag: "div"}, c)

	c, err = Build(KindTextContent, map[string]any{"value": "hi"})
	require.NoError(t, err)
	assert.Equal(t, TextContent{Value: "hi"}, c)

	c, err = Build(KindClickable, nil)
	require.NoError(t, err)
	assert.Equal(t, Clickable{}, c)
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build("no_such_kind", nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, Known("no_such_kind"))
	assert.True(t, Known(KindRadio))
}

func TestBuildMissingProp(t *testing.T) {
	_, err := Build(KindDOMElement, nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = Build(KindSelection, map[string]any{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildClassesListShapes(t *testing.T) {
	for _, props := range []map[string]any{
		{"list": []string{"a", "b"}},
		{"list": []any{"a", "b"}},
		{"list": "a b"},
	} {
		c, err := Build(KindClasses, props)
		require.NoError(t, err)
		assert.Equal(t, Classes{List: []string{"a", "b"}}, c)
	}

	_, err := Build(KindClasses, map[string]any{"list": 7})
	assert.ErrorIs(t, err, ErrValidation)
}
