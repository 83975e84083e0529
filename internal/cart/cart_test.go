package cart

import (
	"errors"
	"reflect"
	"testing"
)

func sampleItem() LineItem {
	return LineItem{
		Occasion:        "personal",
		Product:         "half_goat",
		SpecialCutID:    "leg",
		SpecialCutLabel: "Leg cut",
		SlaughterDate:   "2025-06-01",
		Distribution:    "pickup",
		WeightSelection: "as_is",
		MinPrice:        400,
		MaxPrice:        600,
		ProductLabel:    "½ Goat",
	}
}

func TestAddThenGetRoundTrip(t *testing.T) {
	s := NewStore(&MemoryBackend{})

	in := sampleItem()
	id := s.Add(in)
	if id == "" {
		t.Fatal("Add returned empty id")
	}

	got, ok := s.Get(id)
	if !ok {
		t.Fatal("Get did not find the added item")
	}
	in.ID = id
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestRemoveThenGet(t *testing.T) {
	s := NewStore(&MemoryBackend{})
	id := s.Add(sampleItem())

	s.Remove(id)
	if _, ok := s.Get(id); ok {
		t.Error("item still present after Remove")
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("List after Remove has %d items", got)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := NewStore(&MemoryBackend{})

	first := sampleItem()
	second := sampleItem()
	second.Product = "whole_sheep"
	third := sampleItem()
	third.Product = "whole_goat"

	s.Add(first)
	id := s.Add(second)
	s.Add(third)
	s.Remove(id)

	items := s.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Product != "half_goat" || items[1].Product != "whole_goat" {
		t.Errorf("insertion order lost: %s, %s", items[0].Product, items[1].Product)
	}
}

func TestUpdateReplacesById(t *testing.T) {
	s := NewStore(&MemoryBackend{})
	seeded := sampleItem()
	seeded.Note = "ring the bell"
	id := s.Add(seeded)

	updated := sampleItem()
	updated.Distribution = "delivery"
	s.Update(id, updated)

	got, _ := s.Get(id)
	if got.Distribution != "delivery" {
		t.Errorf("update not applied: %+v", got)
	}
	// Replacement is wholesale: fields the new item leaves unset are cleared.
	if got.Note != "" {
		t.Errorf("note survived a replacement that omitted it: %q", got.Note)
	}
	if got.ID != id {
		t.Errorf("update changed the id: %s -> %s", id, got.ID)
	}

	// Updating an unknown id is a no-op.
	s.Update("missing", updated)
	if len(s.List()) != 1 {
		t.Error("update of unknown id altered the list")
	}
}

type failingBackend struct{ saves int }

func (f *failingBackend) Load() ([]LineItem, error) { return nil, nil }
func (f *failingBackend) Save([]LineItem) error {
	f.saves++
	return errors.New("disk full")
}

// Persist failures are swallowed; memory stays authoritative for the session.
func TestPersistFailureIsSwallowed(t *testing.T) {
	backend := &failingBackend{}
	s := NewStore(backend)

	id := s.Add(sampleItem())
	if _, ok := s.Get(id); !ok {
		t.Error("item lost after failed persist")
	}
	if backend.saves == 0 {
		t.Error("backend was never asked to save")
	}
}

func TestManagerSessions(t *testing.T) {
	m := NewManager()

	id, store := m.Session("")
	if id == "" || store == nil {
		t.Fatal("empty session id should allocate a new session")
	}

	again, same := m.Session(id)
	if again != id || same != store {
		t.Error("known session id should return the same store")
	}

	m.Drop(id)
	fresh, replacement := m.Session(id)
	if fresh != id {
		t.Errorf("Session kept the caller id, got %s", fresh)
	}
	if replacement == store {
		t.Error("dropped session store was resurrected")
	}
}
