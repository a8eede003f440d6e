package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIDPacking(t *testing.T) {
	id := NewEntityID(42, 7)
	assert.Equal(t, uint32(42), id.Index())
	assert.Equal(t, uint32(7), id.Generation())
	assert.False(t, id.IsZero())
	assert.True(t, EntityID(0).IsZero())
}

func TestPoolNeverAllocatesIndexZero(t *testing.T) {
	p := NewEntityPool()
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, uint32(0), p.Create().Index())
	}
	assert.False(t, p.Alive(0))
}

func TestPoolRecyclesWithBumpedGeneration(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	p.Destroy(a)

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index())
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.False(t, p.Alive(a))
	assert.True(t, p.Alive(b))
}

func TestPoolDoubleDestroyIsNoop(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	p.Destroy(a)
	p.Destroy(a) // stale, must not double-free the slot

	b := p.Create()
	c := p.Create()
	assert.NotEqual(t, b, c)
	assert.True(t, p.Alive(b))
	assert.True(t, p.Alive(c))
}
