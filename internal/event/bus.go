package event

import "sync"

// Handler receives a published payload. The concrete type of payload is
// determined by the topic it was published under.
type Handler func(payload any)

// Bus is a synchronous topic-based event bus.
// Subscribe and Publish are safe for concurrent use; handlers themselves
// run on the publishing goroutine.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic][]Handler),
	}
}

// Subscribe registers a handler for the given topic.
// Handlers for a topic are invoked in registration order.
func (b *Bus) Subscribe(t Topic, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish delivers payload to every handler subscribed to the topic.
// It returns once all handlers have run.
func (b *Bus) Publish(t Topic, payload any) {
	b.mu.RLock()
	hs := b.handlers[t]
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// SubscriberCount returns the number of handlers registered for the topic.
func (b *Bus) SubscriberCount(t Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[t])
}
