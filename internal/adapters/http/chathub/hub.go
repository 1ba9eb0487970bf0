// Package chathub fans chat messages out to live websocket subscribers.
package chathub

import (
	"log/slog"
	"sync"

	"padelcygnus/internal/domain/chat"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 16

// Hub routes published messages to the subscribers of their conversation.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]map[*subscriber]struct{}
	buffer int
}

type subscriber struct {
	ch chan chat.Message
}

// New creates a hub whose subscribers queue up to buffer messages.
func New(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{subs: make(map[string]map[*subscriber]struct{}), buffer: buffer}
}

// Subscribe registers interest in one conversation. The returned cancel
// unregisters and closes the channel; it is safe to call more than once.
// PRE: conversationID is non-empty
// POST: Messages published for conversationID after this call arrive on the channel
func (h *Hub) Subscribe(conversationID string) (<-chan chat.Message, func()) {
	s := &subscriber{ch: make(chan chat.Message, h.buffer)}

	h.mu.Lock()
	if h.subs[conversationID] == nil {
		h.subs[conversationID] = make(map[*subscriber]struct{})
	}
	h.subs[conversationID][s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[conversationID], s)
			if len(h.subs[conversationID]) == 0 {
				delete(h.subs, conversationID)
			}
			h.mu.Unlock()
			close(s.ch)
		})
	}
}

// Publish delivers m to every subscriber of its conversation without blocking.
// A subscriber whose queue is full misses the message and must recover it
// from the stored transcript on its next update.
func (h *Hub) Publish(m chat.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[m.ConversationID] {
		select {
		case s.ch <- m:
		default:
			slog.Warn("chat_event", "event", "push_dropped", "conversation_id", m.ConversationID, "seq", m.Seq)
		}
	}
}

// Subscribers returns the number of live subscribers for a conversation.
func (h *Hub) Subscribers(conversationID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[conversationID])
}
