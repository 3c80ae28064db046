// Package hooks delivers document and build lifecycle events to
// registered handlers: a synchronous in-process bus, optionally
// mirrored to NATS JetStream.
package hooks

import "sync"

// Handler processes an Event; return error to signal failure.
type Handler func(Event) error

// Bus is a simple synchronous pub/sub event bus. Delivery is
// fire-and-forget from the producer's perspective: Publish collects the
// first handler error but producers typically ignore it.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
	anyHandlers []Handler
}

func NewBus() *Bus { return &Bus{subscribers: map[string][]Handler{}} }

// Subscribe registers a handler for a given event name.
func (b *Bus) Subscribe(event string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.subscribers[event] = append(b.subscribers[event], h)
	b.mu.Unlock()
}

// SubscribeAll registers a handler invoked for every event.
func (b *Bus) SubscribeAll(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.anyHandlers = append(b.anyHandlers, h)
	b.mu.Unlock()
}

// Publish delivers an event to all handlers synchronously.
func (b *Bus) Publish(e Event) error {
	b.mu.RLock()
	hs := append([]Handler(nil), b.subscribers[e.Name()]...)
	hs = append(hs, b.anyHandlers...)
	b.mu.RUnlock()

	var first error
	for _, h := range hs {
		if err := h(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
