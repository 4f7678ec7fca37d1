// Package live mirrors a MongoDB collection into push subscriptions:
// a watcher republishes the full snapshot on every change, a hub fans
// it out to connected subscribers.
package live

import (
	"sync"

	"github.com/google/uuid"
)

// Buffered room per subscriber before it is considered stuck.
const subscriberBuffer = 8

// Hub fans collection snapshots out to subscribers. A new subscriber
// immediately receives the most recent snapshot, then one message per
// published change.
type Hub struct {
	mu   sync.Mutex
	subs map[string]chan []byte
	last []byte
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]chan []byte)}
}

// Subscribe registers a new subscriber and returns its id and channel.
// The last published snapshot, if any, is already queued on the
// channel.
func (h *Hub) Subscribe() (string, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan []byte, subscriberBuffer)
	if h.last != nil {
		ch <- h.last
	}
	h.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Calling it
// again for the same id is a no-op.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish records the snapshot and sends it to every subscriber.
// Subscribers whose buffer is full are dropped rather than blocking the
// watcher.
func (h *Hub) Publish(snapshot []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = snapshot
	for id, ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
			delete(h.subs, id)
			close(ch)
		}
	}
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
