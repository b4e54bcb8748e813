package server

import (
	"sync"

	"github.com/google/uuid"

	"treasurehunt/pkg/game/state"
)

// sessionEntry guards one session. Commands on a session run one at a time.
type sessionEntry struct {
	mu      sync.Mutex
	session *state.GameSession
}

// Registry holds the live sessions of the HTTP surface keyed by UUID
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*sessionEntry)}
}

// Add registers s under a fresh id and returns the id
func (r *Registry) Add(s *state.GameSession) string {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &sessionEntry{session: s}
	return id
}

// get looks up a session entry
func (r *Registry) get(id string) (*sessionEntry, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return e, ok
}

// Remove drops a session. Returns false when the id was unknown.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
