// Package cart holds the session-scoped shopping cart. Items live in memory
// for the life of a browsing session; the backend persist is best-effort and
// a failed write never surfaces to the customer.
package cart

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// LineItem is one wizard submission. Price fields are a snapshot taken at
// add time so later catalog edits do not change a pending cart item.
type LineItem struct {
	ID                string  `json:"id"`
	Occasion          string  `json:"occasion"`
	Product           string  `json:"product"`
	SpecialCutID      string  `json:"special_cut_id"`
	SpecialCutLabel   string  `json:"special_cut_label"`
	SlaughterDate     string  `json:"slaughter_date"`
	Distribution      string  `json:"distribution"`
	WeightSelection   string  `json:"weight_selection"`
	WeightLabel       string  `json:"weight_label,omitempty"`
	VideoProof        bool    `json:"video_proof"`
	IncludeHead       bool    `json:"include_head"`
	IncludeStomach    bool    `json:"include_stomach"`
	IncludeIntestines bool    `json:"include_intestines"`
	Note              string  `json:"note"`
	MinPrice          float64 `json:"min_price"`
	MaxPrice          float64 `json:"max_price"`
	ProductLabel      string  `json:"product_label"`
}

// Backend persists the full item list after each mutation. Implementations
// may fail; the store swallows the error and keeps serving from memory.
type Backend interface {
	Load() ([]LineItem, error)
	Save(items []LineItem) error
}

// MemoryBackend keeps the persisted copy in process memory. It is the default
// backend for session-scoped carts.
type MemoryBackend struct {
	items []LineItem
}

func (m *MemoryBackend) Load() ([]LineItem, error) { return m.items, nil }

func (m *MemoryBackend) Save(items []LineItem) error {
	m.items = append([]LineItem(nil), items...)
	return nil
}

// Store is one session's cart. List order is insertion order.
type Store struct {
	mu      sync.Mutex
	items   []LineItem
	backend Backend
}

// NewStore builds a Store over the given backend, seeding the in-memory list
// from whatever the backend already holds. A nil backend disables persistence.
func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}
	if backend != nil {
		if items, err := backend.Load(); err == nil {
			s.items = append(s.items, items...)
		} else {
			log.Printf("[cart] load failed, starting empty: %v", err)
		}
	}
	return s
}

// Add appends the item under a fresh id and returns the id.
func (s *Store) Add(item LineItem) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	s.items = append(s.items, item)
	s.persist()
	return item.ID
}

// Update replaces the item with the given id wholesale, keeping only the id.
// Callers submit complete items, not partial patches; fields absent from the
// replacement are cleared. Unknown ids are ignored.
func (s *Store) Update(id string, item LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			s.items[i] = item
			s.persist()
			return
		}
	}
}

// Remove deletes the item with the given id, if present.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist()
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// List returns the items in insertion order.
func (s *Store) List() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(make([]LineItem, 0, len(s.items)), s.items...)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// persist writes through to the backend. The in-memory list stays
// authoritative for the rest of the session when the write fails.
func (s *Store) persist() {
	if s.backend == nil {
		return
	}
	if err := s.backend.Save(s.items); err != nil {
		log.Printf("[cart] persist failed, keeping in-memory state: %v", err)
	}
}
