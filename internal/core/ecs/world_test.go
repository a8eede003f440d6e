package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	coresys "github.com/domforge/domforge/internal/core/system"
	"github.com/domforge/domforge/internal/host"
	"github.com/domforge/domforge/internal/host/memdom"
)

type probe struct{ Tag string }

func (probe) ComponentKind() Kind { return "probe" }

type marker struct{}

func (marker) ComponentKind() Kind { return "marker" }

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(memdom.New().Externals(zap.NewNop()))
	require.NoError(t, err)
	return w
}

func TestNewWorldRequiresDocument(t *testing.T) {
	_, err := NewWorld(host.Externals{})
	require.Error(t, err)
}

func TestCreateEntityRootsAndChildren(t *testing.T) {
	w := newTestWorld(t)

	root, err := w.CreateEntity(0)
	require.NoError(t, err)
	child, err := w.CreateEntity(root)
	require.NoError(t, err)

	assert.True(t, w.Alive(root))
	assert.True(t, w.Alive(child))
	assert.Equal(t, []EntityID{root}, w.Roots())
	assert.Equal(t, []EntityID{child}, w.Children(root))
	assert.Equal(t, root, w.Parent(child))
	assert.True(t, w.Parent(root).IsZero())
}

func TestCreateEntityInvalidParent(t *testing.T) {
	w := newTestWorld(t)

	e, err := w.CreateEntity(root(t, w))
	require.NoError(t, err)
	require.NoError(t, w.DestroyEntity(e))

	_, err = w.CreateEntity(e)
	require.ErrorIs(t, err, ErrInvalidParent)
}

func TestAddGetOverwrite(t *testing.T) {
	w := newTestWorld(t)
	e := root(t, w)

	require.NoError(t, w.Add(e, probe{Tag: "a"}))
	got, ok := Lookup[probe](w, e)
	require.True(t, ok)
	assert.Equal(t, "a", got.Tag)

	// Same kind overwrites, at most one value per kind.
	require.NoError(t, w.Add(e, probe{Tag: "b"}))
	got, _ = Lookup[probe](w, e)
	assert.Equal(t, "b", got.Tag)
}

func TestAddToDeadEntityLeavesWorldUnchanged(t *testing.T) {
	w := newTestWorld(t)
	e := root(t, w)
	require.NoError(t, w.DestroyEntity(e))
	before := w.Changes().Len()

	err := w.Add(e, probe{Tag: "x"})
	require.ErrorIs(t, err, ErrUnknownEntity)
	assert.Equal(t, before, w.Changes().Len())
	assert.False(t, w.Has(e, "probe"))
}

func TestRemoveComponent(t *testing.T) {
	w := newTestWorld(t)
	e := root(t, w)
	require.NoError(t, w.Add(e, probe{Tag: "a"}))

	require.NoError(t, w.RemoveComponent(e, "probe"))
	assert.False(t, w.Has(e, "probe"))

	// Removing an absent kind is a no-op and records nothing.
	before := w.Changes().Len()
	require.NoError(t, w.RemoveComponent(e, "probe"))
	assert.Equal(t, before, w.Changes().Len())
}

func TestDestroySubtree(t *testing.T) {
	w := newTestWorld(t)
	r := root(t, w)
	a, err := w.CreateEntity(r)
	require.NoError(t, err)
	b, err := w.CreateEntity(a)
	require.NoError(t, err)
	require.NoError(t, w.Add(b, marker{}))

	require.NoError(t, w.DestroyEntity(r))

	assert.False(t, w.Alive(r))
	assert.False(t, w.Alive(a))
	assert.False(t, w.Alive(b))
	assert.Empty(t, w.Roots())
	assert.False(t, w.Has(b, "marker"))
}

func TestDestroyReusesIndexWithNewGeneration(t *testing.T) {
	w := newTestWorld(t)
	e := root(t, w)
	require.NoError(t, w.DestroyEntity(e))

	again := root(t, w)
	assert.Equal(t, e.Index(), again.Index())
	assert.NotEqual(t, e.Generation(), again.Generation())
	assert.False(t, w.Alive(e), "stale id must stay dead")
	assert.True(t, w.Alive(again))
}

func TestChangesetRecordsInOrder(t *testing.T) {
	w := newTestWorld(t)
	e := root(t, w)
	require.NoError(t, w.Add(e, probe{Tag: "a"}))
	require.NoError(t, w.Add(e, probe{Tag: "b"}))
	require.NoError(t, w.RemoveComponent(e, "probe"))

	cs := w.Changes()
	assert.Equal(t, []EntityID{e}, cs.Spawned())
	// Two sets of the same kind dedup to one entry.
	assert.Equal(t, []EntityID{e}, cs.Set("probe"))
	assert.Equal(t, []EntityID{e}, cs.Unset("probe"))

	require.NoError(t, w.DestroyEntity(e))
	assert.Equal(t, []EntityID{e}, cs.Destroyed())
}

func TestDestroyRecordsChildrenBeforeSelf(t *testing.T) {
	w := newTestWorld(t)
	r := root(t, w)
	c, err := w.CreateEntity(r)
	require.NoError(t, err)

	require.NoError(t, w.DestroyEntity(r))
	assert.Equal(t, []EntityID{c, r}, w.Changes().Destroyed())
}

func TestFlushClearsChangeset(t *testing.T) {
	w := newTestWorld(t)
	root(t, w)
	require.False(t, w.Changes().Empty())

	require.NoError(t, w.Flush())
	assert.True(t, w.Changes().Empty())
}

type failingSystem struct{ err error }

func (s failingSystem) Phase() coresys.Phase { return coresys.PhaseLogic }
func (s failingSystem) Update() error        { return s.err }

func TestFailedFlushRetainsChangeset(t *testing.T) {
	w := newTestWorld(t)
	boom := errors.New("boom")
	w.RegisterSystem(failingSystem{err: boom})
	root(t, w)
	pending := w.Changes().Len()

	err := w.Flush()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, pending, w.Changes().Len(), "failed flush keeps pending mutations")
}

func TestChildrenAndRootsReturnCopies(t *testing.T) {
	w := newTestWorld(t)
	r := root(t, w)
	_, err := w.CreateEntity(r)
	require.NoError(t, err)

	kids := w.Children(r)
	kids[0] = 0
	assert.NotEqual(t, EntityID(0), w.Children(r)[0])

	roots := w.Roots()
	roots[0] = 0
	assert.Equal(t, r, w.Roots()[0])
}

func root(t *testing.T, w *World) EntityID {
	t.Helper()
	e, err := w.CreateEntity(0)
	require.NoError(t, err)
	return e
}
