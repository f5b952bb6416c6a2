package realtime

import "sync"

// Hub tracks the active websocket session of each signed-in parent so new
// messages can be pushed to the other participant of a conversation.
// A parent has at most one active session; a newer session replaces the
// older one, which is closed.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Connection // parent email -> connection
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*Connection)}
}

// Attach registers the connection and starts its write loop. Any previous
// session for the same email is closed.
func (h *Hub) Attach(conn *Connection) {
	h.mu.Lock()
	prev := h.sessions[conn.Email]
	h.sessions[conn.Email] = conn
	h.mu.Unlock()

	if prev != nil && prev.ID != conn.ID {
		prev.Close(1000, "replaced by newer session")
	}
	conn.Start()
}

// Detach removes the connection if it is still the active session.
func (h *Hub) Detach(conn *Connection) {
	h.mu.Lock()
	if cur, ok := h.sessions[conn.Email]; ok && cur.ID == conn.ID {
		delete(h.sessions, conn.Email)
	}
	h.mu.Unlock()
}

// Notify delivers payload to the parent's active session. It reports whether
// a session was connected; delivery itself is best-effort.
func (h *Hub) Notify(email string, payload []byte) bool {
	h.mu.RLock()
	conn := h.sessions[email]
	h.mu.RUnlock()

	if conn == nil {
		return false
	}
	return conn.Send(payload) == nil
}
