package realtime

import (
	"context"
	"sync"
)

// Hub is an in-process ChannelService for single-node deployments and tests.
// It keeps a subscriber set per token and copies events to each subscriber
// with a non-blocking send.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

// NewHub creates an empty in-process hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Publish delivers the event to every current subscriber of the token.
// Subscribers that are not draining their channel miss the event.
func (h *Hub) Publish(_ context.Context, token string, evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[token] {
		select {
		case ch <- evt:
		default:
		}
	}
}

// Subscribe registers a listener for the token. The cancel function removes
// the listener and closes its channel; calling it twice is safe.
func (h *Hub) Subscribe(_ context.Context, token string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	if h.subs[token] == nil {
		h.subs[token] = make(map[chan Event]struct{})
	}
	h.subs[token][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[token], ch)
			if len(h.subs[token]) == 0 {
				delete(h.subs, token)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers reports how many listeners a token currently has.
func (h *Hub) Subscribers(token string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[token])
}
