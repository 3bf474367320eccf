// Package notify provides an in-process broadcast channel for terminal
// request failures. Publishing is fire-and-forget: it never blocks the
// failing call and never triggers a retry; a subscriber that falls behind
// simply misses records.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Failure describes one exhausted request: every tier was tried and all of
// them failed.
type Failure struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	URL     string    `json:"url"`
	Status  int       `json:"status"` // 0 when the failure was transport-level
	At      time.Time `json:"at"`
}

const subscriberBuffer = 16

// Broadcaster fans failure records out to any number of subscribers.
// The zero value is not usable; call NewBroadcaster.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Failure
	next int
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Failure)}
}

// Subscribe registers a new subscriber and returns its channel along with a
// cancel function. The channel is closed on cancel.
func (b *Broadcaster) Subscribe() (<-chan Failure, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Failure, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish delivers a failure record to every subscriber without blocking.
// The record's ID and timestamp are filled in if unset.
func (b *Broadcaster) Publish(f Failure) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.At.IsZero() {
		f.At = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- f:
		default:
			// Subscriber is full; drop rather than block the caller.
		}
	}
}
