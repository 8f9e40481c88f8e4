// Package notify is the in-process change-notification hub controllers use
// to tell their views to re-render.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Hub fans a parameterless change signal out to subscribers. Callbacks run
// synchronously on the notifying goroutine and must not block; a view that
// needs to defer work should hand the signal off to its own channel.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]func()
	closed bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]func())}
}

// Subscribe registers fn and returns the token to pass to Unsubscribe.
// Subscribing to a closed hub is a no-op.
func (h *Hub) Subscribe(fn func()) string {
	token := uuid.NewString()
	if fn == nil {
		return token
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return token
	}
	h.subs[token] = fn
	return token
}

// Unsubscribe removes the subscription identified by token. Unknown tokens
// are ignored.
func (h *Hub) Unsubscribe(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, token)
}

// Notify invokes every subscriber. Callbacks run outside the hub lock so a
// subscriber may unsubscribe itself during delivery.
func (h *Hub) Notify() {
	h.mu.RLock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// Len reports the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close drops every subscription. Notify and Subscribe become no-ops after
// Close; controllers call it on teardown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.subs = make(map[string]func())
}
