package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds active wizard sessions keyed by an opaque cookie value.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Start creates a fresh session and returns its id.
func (r *Registry) Start(catalog Catalog, opts Options) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	s := NewSession(catalog, opts)
	r.sessions[id] = s
	return id, s
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	return s, ok
}

// End removes a session; called after submission or abandonment.
func (r *Registry) End(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}
