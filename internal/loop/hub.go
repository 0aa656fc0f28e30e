package loop

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Report is what a session tells the hub about itself every frame.
type Report struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Health    int     `json:"health"`
	Fuel      float32 `json:"fuel"`
	Score     int     `json:"score"`
	Mode      string  `json:"mode"`
	Asteroids int     `json:"asteroids"`
}

// EventType identifies an event sent from the hub to a session.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is sent from the hub to a session.
type Event struct {
	Type EventType
}

// Handle is a session's registration with the hub.
type Handle struct {
	ID       uuid.UUID
	Username string
	Events   chan Event
}

// Hub tracks the sessions running on one server. Each session plays its
// own world; the hub only collects their reports for spectators and tells
// them when the server goes down.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Handle
	reports  map[uuid.UUID]Report
	logger   *log.Logger
}

// NewHub creates an empty hub. A nil logger uses the default logger.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		sessions: make(map[uuid.UUID]*Handle),
		reports:  make(map[uuid.UUID]Report),
		logger:   logger,
	}
}

// Register adds a session and returns its handle.
func (h *Hub) Register(username string) *Handle {
	handle := &Handle{
		ID:       uuid.New(),
		Username: username,
		Events:   make(chan Event, 4),
	}

	h.mu.Lock()
	h.sessions[handle.ID] = handle
	n := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info("session joined", "id", handle.ID, "user", username, "sessions", n)
	return handle
}

// Unregister removes a session. Unknown ids are ignored.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	delete(h.reports, id)
	n := len(h.sessions)
	h.mu.Unlock()

	if ok {
		h.logger.Info("session left", "id", id, "sessions", n)
	}
}

// Publish stores the latest report of a registered session.
func (h *Hub) Publish(id uuid.UUID, r Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	handle, ok := h.sessions[id]
	if !ok {
		return
	}
	r.ID = id.String()
	r.Username = handle.Username
	h.reports[id] = r
}

// Snapshot returns the latest reports, highest score first.
func (h *Hub) Snapshot() []Report {
	h.mu.RLock()
	out := make([]Report, 0, len(h.reports))
	for _, r := range h.reports {
		out = append(out, r)
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Count returns the number of registered sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown tells every session the server is going down and waits until
// they have all left or timeout passes. It reports whether all left.
func (h *Hub) Shutdown(timeout time.Duration) bool {
	h.mu.RLock()
	for _, handle := range h.sessions {
		select {
		case handle.Events <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return true
		}
		select {
		case <-deadline:
			h.logger.Warn("sessions still connected at shutdown", "sessions", h.Count())
			return false
		case <-ticker.C:
		}
	}
}
