package loop

import (
	"sync"
	"time"
)

// EventType identifies a hub event.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is sent from the hub to a session.
type Event struct {
	Type    EventType
	Display time.Duration // How long to show the shutdown notice
}

// Session is a hub's handle on one connected player. Every session runs its own game.
type Session struct {
	ID     int
	User   string
	Events chan Event
}

// Hub tracks live sessions so the server can notify them on shutdown and wait for
// them to leave.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*Session
	nextID   int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int]*Session),
		nextID:   1,
	}
}

// Register adds a session for user and returns its handle.
func (h *Hub) Register(user string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &Session{
		ID:     h.nextID,
		User:   user,
		Events: make(chan Event, 4),
	}
	h.nextID++
	h.sessions[s.ID] = s
	return s
}

// Unregister removes a session.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session that the server is going down and waits for them to
// disconnect, up to timeout.
func (h *Hub) Shutdown(display, timeout time.Duration) {
	h.mu.RLock()
	for _, s := range h.sessions {
		select {
		case s.Events <- Event{Type: EventServerShutdown, Display: display}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
