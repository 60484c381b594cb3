package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

const (
	EventHired       = "hired"
	EventBidRejected = "bid_rejected"
)

// Event is the payload pushed to a user's active connections. Event carries
// the logical event name (socket-style), Type mirrors it for clients that
// switch on the payload alone.
type Event struct {
	Event    string `json:"event"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	GigTitle string `json:"gigTitle"`
	GigID    uint   `json:"gigId"`
	BidID    uint   `json:"bidId"`
}

type connection struct {
	send chan []byte
}

// Hub maps a user id to that user's active connections. Delivery is
// best-effort: a user with no connection misses the event, a slow connection
// has it dropped. Nothing is persisted or retried.
type Hub struct {
	mu    sync.RWMutex
	conns map[uint]map[string]*connection
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[string]*connection)}
}

func (h *Hub) register(userID uint, connID string, c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[string]*connection)
	}
	h.conns[userID][connID] = c
}

func (h *Hub) unregister(userID uint, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.conns[userID]; ok {
		if c, ok := conns[connID]; ok {
			close(c.send)
			delete(conns, connID)
		}
		if len(conns) == 0 {
			delete(h.conns, userID)
		}
	}
}

// Publish sends the event to every active connection of the given user and
// returns immediately. Failures never propagate to the caller.
func (h *Hub) Publish(userID uint, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[ws] failed to marshal %s event: %v", event.Event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for connID, c := range h.conns[userID] {
		select {
		case c.send <- data:
		default:
			log.Printf("[ws] dropping %s event for user %d (connection %s is slow)", event.Event, userID, connID)
		}
	}
}

// Subscribers reports how many connections a user currently holds.
func (h *Hub) Subscribers(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}
