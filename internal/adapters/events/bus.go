// Package events fans ledger notifications out to in-process subscribers
// and durable sinks.
package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/example/electoral/internal/ports/secondary"
)

// DefaultBuffer is the per-subscriber channel capacity used when none is given.
const DefaultBuffer = 64

// Bus implements secondary.EventPublisher.
// Sinks receive every event synchronously; subscribers receive it on a
// buffered channel and miss it if their buffer is full, so Publish never blocks.
type Bus struct {
	mu      sync.RWMutex
	subs    map[int]chan secondary.Event
	nextSub int
	buffer  int
	sinks   []secondary.EventPublisher
	dropped atomic.Int64
}

// NewBus creates a Bus. buffer <= 0 selects DefaultBuffer.
func NewBus(buffer int, sinks ...secondary.EventPublisher) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Bus{
		subs:   make(map[int]chan secondary.Event),
		buffer: buffer,
		sinks:  sinks,
	}
}

// Subscribe registers a subscriber. The returned cancel func unregisters it
// and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe() (<-chan secondary.Event, func()) {
	ch := make(chan secondary.Event, b.buffer)

	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers event to every sink, then to every subscriber.
// Sink errors are joined and returned; subscriber delivery never fails.
func (b *Bus) Publish(ctx context.Context, event secondary.Event) error {
	var errs []error
	for _, sink := range b.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	b.mu.RLock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
	b.mu.RUnlock()

	return errors.Join(errs...)
}

// Dropped returns how many subscriber deliveries were skipped on full buffers.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Ensure Bus implements the interface
var _ secondary.EventPublisher = (*Bus)(nil)
