package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/core/event"
	"github.com/domforge/domforge/internal/host/memdom"
	"github.com/domforge/domforge/internal/system"
)

type fixture struct {
	dom    *memdom.DOM
	world  *ecs.World
	engine *Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dom := memdom.New()
	w, err := ecs.NewWorld(dom.Externals(zap.NewNop()))
	require.NoError(t, err)
	system.RegisterDOMSystems(w, event.NewBus())
	eng := NewEngine(w, zap.NewNop())
	t.Cleanup(eng.Close)
	return &fixture{dom: dom, world: w, engine: eng}
}

func TestImperativeAPI(t *testing.T) {
	f := newFixture(t)
	err := f.engine.RunString(`
		local e = df.create()
		df.add(e, "dom_element", {tag = "div"})
		df.add(e, "text_content", {value = "from lua"})
		local child = df.create(e)
		df.add(child, "dom_element", {tag = "span"})
		df.flush()
	`)
	require.NoError(t, err)

	div := f.dom.Root().FirstByTag("div")
	require.NotNil(t, div)
	assert.Equal(t, "from lua", div.Text())
	assert.NotNil(t, div.FirstByTag("span"))
}

func TestRemoveAndDestroy(t *testing.T) {
	f := newFixture(t)
	err := f.engine.RunString(`
		local e = df.create()
		df.add(e, "dom_element", {tag = "div"})
		df.flush()
		df.destroy(e)
		df.flush()
	`)
	require.NoError(t, err)
	assert.Nil(t, f.dom.Root().FirstByTag("div"))
}

func TestMaterializeFromLua(t *testing.T) {
	f := newFixture(t)
	err := f.engine.RunString(`
		root_id = df.materialize({
			tag = "entity",
			children = {
				{tag = "dom_element", props = {tag = "div"}},
				{tag = "classes", props = {list = {"page", "wide"}}},
				{
					tag = "entity",
					children = {
						{tag = "dom_element", props = {tag = "p"}},
						{tag = "text_content", props = {value = "hi"}},
					},
				},
			},
		})
		df.flush()
	`)
	require.NoError(t, err)

	div := f.dom.Root().FirstByTag("div")
	require.NotNil(t, div)
	assert.Equal(t, []string{"page", "wide"}, div.ClassList())
	p := div.FirstByTag("p")
	require.NotNil(t, p)
	assert.Equal(t, "hi", p.Text())
}

func TestBuildGlobal(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.engine.RunString(`
		function build_scene()
			return {
				tag = "entity",
				children = {
					{tag = "dom_element", props = {tag = "section"}},
				},
			}
		end
	`))

	root, err := f.engine.BuildGlobal("build_scene")
	require.NoError(t, err)

	el, ok := ecs.Lookup[component.DOMElement](f.world, root)
	require.True(t, ok)
	assert.Equal(t, "section", el.Tag)
}

func TestBuildGlobalMissingFunction(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.BuildGlobal("nope")
	assert.Error(t, err)
}

func TestInvalidComponentRaisesLuaError(t *testing.T) {
	f := newFixture(t)
	err := f.engine.RunString(`
		local e = df.create()
		df.add(e, "dom_element", {tag = "NOT OK"})
	`)
	assert.Error(t, err)
}

func TestBuildGlobalRejectsNonTable(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.engine.RunString(`function bad() return 42 end`))
	_, err := f.engine.BuildGlobal("bad")
	assert.Error(t, err)
}
