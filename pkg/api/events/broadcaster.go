// Package events fans saga transitions out to in-process subscribers,
// feeding the websocket stream.
package events

import (
	"sync"
	"time"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/saga"
)

// Broadcaster distributes saga events to subscribers. It implements
// saga.Observer so workflows can emit straight into it.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan saga.Event]struct{}
	closed      bool
}

// NewBroadcaster creates a broadcaster instance.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan saga.Event]struct{}),
	}
}

// Subscribe registers a new subscriber with a buffered channel. After
// Close the returned channel is already closed.
func (b *Broadcaster) Subscribe(buffer int) chan saga.Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan saga.Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan saga.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; !ok {
		return
	}
	delete(b.subscribers, ch)
	close(ch)
}

// SagaEvent delivers one event to every subscriber. Slow subscribers
// lose events rather than stall the emitting workflow. Sends happen
// under the read lock so a concurrent Unsubscribe cannot close a
// channel mid-send.
func (b *Broadcaster) SagaEvent(event saga.Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes all subscriber channels and rejects new subscriptions.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, ch)
	}
}
