package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domforge/domforge/internal/core/ecs"
)

func TestEmitIsDeferredUntilSwap(t *testing.T) {
	b := NewBus()
	var got []ecs.EntityID
	Subscribe(b, func(ev ClickEvent) error {
		got = append(got, ev.Entity)
		return nil
	})

	Emit(b, ClickEvent{Entity: 1})
	require.NoError(t, b.DispatchAll())
	assert.Empty(t, got, "back-buffer events must wait for the swap")

	b.SwapBuffers()
	require.NoError(t, b.DispatchAll())
	assert.Equal(t, []ecs.EntityID{1}, got)
}

func TestEmitDuringDispatchLandsInNextSwap(t *testing.T) {
	b := NewBus()
	var selections []string
	Subscribe(b, func(ev ClickEvent) error {
		Emit(b, SelectionChanged{Group: ev.Entity, Value: "v"})
		return nil
	})
	Subscribe(b, func(ev SelectionChanged) error {
		selections = append(selections, ev.Value)
		return nil
	})

	Emit(b, ClickEvent{Entity: 2})
	b.SwapBuffers()
	require.NoError(t, b.DispatchAll())
	assert.Empty(t, selections, "cascade delivers one flush later")

	b.SwapBuffers()
	require.NoError(t, b.DispatchAll())
	assert.Equal(t, []string{"v"}, selections)
}

func TestAllHandlersReceiveEachEvent(t *testing.T) {
	b := NewBus()
	var a, c int
	Subscribe(b, func(ClickEvent) error { a++; return nil })
	Subscribe(b, func(ClickEvent) error { c++; return nil })

	Emit(b, ClickEvent{Entity: 3})
	Emit(b, ClickEvent{Entity: 4})
	b.SwapBuffers()
	require.NoError(t, b.DispatchAll())

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, c)
}

func TestHandlerErrorAbortsDispatch(t *testing.T) {
	b := NewBus()
	boom := errors.New("boom")
	var after int
	Subscribe(b, func(ClickEvent) error { return boom })
	Subscribe(b, func(ClickEvent) error { after++; return nil })

	Emit(b, ClickEvent{Entity: 5})
	Emit(b, ClickEvent{Entity: 6})
	b.SwapBuffers()

	err := b.DispatchAll()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, after, "remaining handlers are skipped")
}
