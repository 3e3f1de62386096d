package robot

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrSessionNotFound is returned by Registry.Get for an unknown id.
var ErrSessionNotFound = errors.New("session not found")

// Registry owns the sessions of one controller and counts the robots it has
// started. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	started  int
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Start creates and registers a session at start.
func (r *Registry) Start(name string, start Pose) *Session {
	s := newSession(name, start)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
	r.started++
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Stop discards a session. The started count is unaffected.
func (r *Registry) Stop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Started returns how many sessions were ever started.
func (r *Registry) Started() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.started
}

// Names returns the names of live sessions, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sessions))
	for _, s := range r.sessions {
		names = append(names, s.name)
	}
	sort.Strings(names)
	return names
}
