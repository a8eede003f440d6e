package event

import (
	"reflect"
	"sync"
)

// Bus is a double-buffered event bus. Host callbacks (click listeners)
// emit into the back buffer between flushes; the dispatch system swaps
// buffers at flush start and delivers the front buffer, so an event
// emitted during flush N is handled in flush N+1.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]any),
	}
}

// Emit queues an event into the back buffer (delivered on the next flush).
func Emit[T any](b *Bus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back[t] = append(b.back[t], event)
}

// Subscribe registers a typed handler for events of type T. A handler
// error aborts the remaining dispatch and surfaces through the flush,
// matching how a failing system aborts the runner.
func Subscribe[T any](b *Bus, fn func(T) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers rotates back→front and clears the new back buffer.
// Called once at flush start by the dispatch system.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
}

// DispatchAll delivers all front-buffer events to their subscribed
// handlers, stopping at the first handler error.
func (b *Bus) DispatchAll() error {
	for t, events := range b.front {
		handlers := b.handlers[t]
		for _, ev := range events {
			for _, h := range handlers {
				// Subscribe and Emit key on the same type, so the
				// handler signature is known to match the event.
				if err := callHandler(h, ev); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func callHandler(handler any, event any) error {
	out := reflect.ValueOf(handler).Call([]reflect.Value{reflect.ValueOf(event)})
	if e := out[0].Interface(); e != nil {
		return e.(error)
	}
	return nil
}
