package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager maps browsing sessions to their carts. Sessions are identified by
// an opaque cookie value and exist only for the life of the process, matching
// the session-scoped contract of the cart.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Session returns the cart for the given session id, creating one when the
// id is unknown. An empty id allocates a new session.
func (m *Manager) Session(id string) (string, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if store, ok := m.stores[id]; ok {
			return id, store
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	store := NewStore(&MemoryBackend{})
	m.stores[id] = store
	return id, store
}

// Drop discards a session and its cart.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.stores, id)
}
