package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildReattaches(t *testing.T) {
	d := New()
	a, err := d.CreateElement("div")
	require.NoError(t, err)
	b, err := d.CreateElement("span")
	require.NoError(t, err)

	d.Root().AppendChild(a)
	a.AppendChild(b)
	require.Len(t, a.Children(), 1)

	// Appending elsewhere moves the node, it is never in two places.
	d.Root().AppendChild(b)
	assert.Empty(t, a.Children())
	assert.Len(t, d.Root().Children(), 2)
}

func TestReplaceChildKeepsPosition(t *testing.T) {
	d := New()
	a, _ := d.CreateElement("a")
	b, _ := d.CreateElement("b")
	c, _ := d.CreateElement("c")
	d.Root().AppendChild(a)
	d.Root().AppendChild(b)

	d.Root().ReplaceChild(c, a)
	kids := d.Root().Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "c", kids[0].Tag())
	assert.Equal(t, "b", kids[1].Tag())
}

func TestMutationCounter(t *testing.T) {
	d := New()
	n, _ := d.CreateElement("div")
	d.Root().AppendChild(n)
	n.SetText("x")
	n.SetAttribute("k", "v")
	n.SetClasses([]string{"c"})
	assert.Equal(t, 5, d.Mutations())

	// Clearing zero listeners does not count.
	n.ClearClickListeners()
	assert.Equal(t, 5, d.Mutations())

	// Removing an absent attribute does not count, a present one does.
	n.RemoveAttribute("missing")
	assert.Equal(t, 5, d.Mutations())
	n.RemoveAttribute("k")
	assert.Equal(t, 6, d.Mutations())
}

func TestRender(t *testing.T) {
	d := New()
	div, _ := d.CreateElement("div")
	div.SetClasses([]string{"page"})
	span, _ := d.CreateElement("span")
	span.SetText("hi")
	div.AppendChild(span)
	d.Root().AppendChild(div)

	out := d.Root().Render()
	assert.Contains(t, out, `<div class="page">`)
	assert.Contains(t, out, "<span>hi</span>")
}
