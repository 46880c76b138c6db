// Package broadcast fans values out to any number of subscribers without
// blocking the publisher. A subscriber whose buffer is full misses the value.
package broadcast

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

var (
	ErrHubClosed         = errors.New("broadcast: hub closed")
	ErrUnknownSubscriber = errors.New("broadcast: unknown subscriber")
)

// DefaultBuffer is the channel capacity used when Subscribe is given a
// non-positive size.
const DefaultBuffer = 4

// Stats is a point-in-time view of hub counters.
type Stats struct {
	Published   uint64 `json:"published"`
	Delivered   uint64 `json:"delivered"`
	Dropped     uint64 `json:"dropped"`
	Subscribers int    `json:"subscribers"`
}

type subscriber[T any] struct {
	ch chan T
}

// Hub is a one-way, fire-and-forget fan-out of T.
type Hub[T any] struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber[T]
	closed bool

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[string]*subscriber[T])}
}

// Subscribe registers a new subscriber and returns its id and receive channel.
// The channel is closed by Unsubscribe or Close.
func (h *Hub[T]) Subscribe(buffer int) (string, <-chan T, error) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return "", nil, ErrHubClosed
	}

	id := uuid.NewString()
	s := &subscriber[T]{ch: make(chan T, buffer)}
	h.subs[id] = s
	return id, s.ch, nil
}

// Unsubscribe removes the subscriber and closes its channel.
func (h *Hub[T]) Unsubscribe(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.subs[id]
	if !ok {
		return ErrUnknownSubscriber
	}
	delete(h.subs, id)
	close(s.ch)
	return nil
}

// Publish offers v to every subscriber. It never blocks.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}

	h.published.Inc()
	for _, s := range h.subs {
		select {
		case s.ch <- v:
			h.delivered.Inc()
		default:
			h.dropped.Inc()
		}
	}
}

// Close closes every subscriber channel. Later publishes are ignored.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, s := range h.subs {
		close(s.ch)
		delete(h.subs, id)
	}
}

func (h *Hub[T]) Stats() Stats {
	h.mu.RLock()
	n := len(h.subs)
	h.mu.RUnlock()

	return Stats{
		Published:   h.published.Load(),
		Delivered:   h.delivered.Load(),
		Dropped:     h.dropped.Load(),
		Subscribers: n,
	}
}
