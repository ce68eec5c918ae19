package events

import "sync"

// Event tells subscribers that a table changed. Payload is deliberately
// minimal: clients re-fetch the table's list view, they do not patch rows.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"` // insert, update, delete
	ID     string `json:"id"`
}

// Hub fans table-change events out to all subscribers. Slow subscribers
// drop events instead of blocking publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Event, 16)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber with room in its buffer.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
