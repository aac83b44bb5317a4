package events

import (
	"context"
	"sync"
)

// MemoryBus delivers events synchronously to in-process subscribers.
// Publish returns only after every handler has run.
type MemoryBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
}

// NewMemoryBus returns an empty bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[int]Handler)}
}

// Publish calls every subscribed handler in turn. It never fails.
func (b *MemoryBus) Publish(ctx context.Context, e Event) error {
	b.deliver(ctx, e)
	return nil
}

// Subscribe registers h until the returned function is called.
func (b *MemoryBus) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

func (b *MemoryBus) deliver(ctx context.Context, e Event) {
	// Snapshot so a handler may unsubscribe itself without deadlocking.
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(ctx, e)
	}
}
