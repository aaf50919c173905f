// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events fans schema update notifications out to push-channel
// subscribers such as websocket connections.
package events

import (
	"sync"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

// DefaultBuffer is the subscriber channel capacity used when Subscribe is
// called with a non-positive buffer.
const DefaultBuffer = 16

// Notifier delivers every published update to all current subscribers.
// Delivery never blocks the publisher: an update that does not fit into a
// subscriber's buffer is dropped for that subscriber.
type Notifier struct {
	mu     sync.RWMutex
	subs   map[uint64]chan models.SchemaUpdate
	nextID uint64
	closed bool

	logger *logger.Logger
}

// NewNotifier returns an open notifier with no subscribers.
func NewNotifier(log *logger.Logger) *Notifier {
	return &Notifier{
		subs:   make(map[uint64]chan models.SchemaUpdate),
		logger: log,
	}
}

// Publish sends update to every subscriber. It is a no-op after Close.
func (n *Notifier) Publish(update models.SchemaUpdate) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return
	}

	for id, ch := range n.subs {
		select {
		case ch <- update:
		default:
			n.logger.Warn().
				Uint64("subscriber", id).
				Str("node_id", update.NodeID).
				Str("section", update.Section).
				Msg("subscriber is slow, schema update dropped")
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func
// unregisters it and closes the channel; it is safe to call more than once.
// Subscribing to a closed notifier returns an already closed channel.
func (n *Notifier) Subscribe(buffer int) (<-chan models.SchemaUpdate, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan models.SchemaUpdate, buffer)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if sub, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Subscribers returns the number of registered subscribers.
func (n *Notifier) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

// Close closes every subscriber channel. Later publishes are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
