package wizard

import (
	"testing"
	"time"

	"github.com/example/kordoba/internal/cart"
	"github.com/example/kordoba/internal/content"
)

func strptr(s string) *string { return &s }

func testCatalog() Catalog {
	return Catalog{
		Products: map[string]content.ProductConfig{
			"half_sheep":  {ProductType: "half_sheep", Label: "½ Sheep", MinPrice: 500, MaxPrice: 700},
			"half_goat":   {ProductType: "half_goat", Label: "½ Goat", MinPrice: 400, MaxPrice: 600},
			"whole_sheep": {ProductType: "whole_sheep", Label: "Whole Sheep", MinPrice: 1000, MaxPrice: 1400},
			"whole_goat":  {ProductType: "whole_goat", Label: "Whole Goat", MinPrice: 800, MaxPrice: 1200},
		},
		Weights: map[string][]content.WeightOption{
			"whole_sheep": {
				{ID: "w40", Label: "40 kg", Price: 1100},
				{ID: "w45", Label: "45 kg", Price: 1250},
			},
		},
	}
}

func TestStateToProduct(t *testing.T) {
	if got := StateToProduct(State{}); got != "" {
		t.Errorf("empty state: got %q", got)
	}
	if got := StateToProduct(State{Animal: "goat"}); got != "" {
		t.Errorf("missing portion: got %q", got)
	}
	if got := StateToProduct(State{Portion: "half"}); got != "" {
		t.Errorf("missing animal: got %q", got)
	}
	if got := StateToProduct(State{Animal: "goat", Portion: "half"}); got != "half_goat" {
		t.Errorf("got %q, want half_goat", got)
	}
}

// Half portions are personal-only. Switching the occasion to qurban or
// aqiqah after half was chosen must force the portion back to whole.
func TestPortionForcedWholeForRitualOccasions(t *testing.T) {
	for _, occasion := range []string{"qurban", "aqiqah"} {
		s := NewSession(testCatalog(), Options{})
		s.Apply(Patch{Occasion: strptr("personal"), Animal: strptr("goat"), Portion: strptr("half")})
		if s.State.Portion != "half" {
			t.Fatalf("personal occasion should allow half, got %q", s.State.Portion)
		}

		s.Apply(Patch{Occasion: strptr(occasion)})
		if s.State.Portion == "half" {
			t.Errorf("occasion %s: portion stayed half", occasion)
		}
		if s.State.Portion != "whole" {
			t.Errorf("occasion %s: portion = %q, want whole", occasion, s.State.Portion)
		}

		// Selecting half directly under a ritual occasion is also rejected.
		s.Apply(Patch{Portion: strptr("half")})
		if s.State.Portion != "whole" {
			t.Errorf("occasion %s: direct half selection not forced to whole", occasion)
		}
	}
}

func TestStepGates(t *testing.T) {
	s := NewSession(testCatalog(), Options{})

	if err := s.Next(); err == nil {
		t.Fatal("step 1 advanced without an occasion")
	}
	s.Apply(Patch{Occasion: strptr("personal")})
	if err := s.Next(); err != nil {
		t.Fatalf("step 1: %v", err)
	}

	if err := s.Next(); err == nil {
		t.Fatal("step 2 advanced without an animal")
	}
	s.Apply(Patch{Animal: strptr("goat")})
	if err := s.Next(); err != nil {
		t.Fatalf("step 2: %v", err)
	}

	s.Apply(Patch{Portion: strptr("half")})
	if err := s.Next(); err != nil {
		t.Fatalf("step 3: %v", err)
	}

	if err := s.Next(); err == nil {
		t.Fatal("step 4 advanced without a cut")
	}
	s.Apply(Patch{SpecialCutID: strptr("leg"), SpecialCutLabel: strptr("Leg cut")})
	if err := s.Next(); err != nil {
		t.Fatalf("step 4: %v", err)
	}

	// Step 5 needs both a date and (re-checked) a cut.
	if err := s.Next(); err == nil {
		t.Fatal("step 5 advanced without a date")
	}
	s.Apply(Patch{SlaughterDate: strptr("2025-06-01"), Distribution: strptr("pickup")})
	if err := s.Next(); err != nil {
		t.Fatalf("step 5: %v", err)
	}

	// half_goat has no weight tiers: the sentinel satisfies the gate.
	if err := s.Next(); err != nil {
		t.Fatalf("step 6 without tiers should advance: %v", err)
	}
	if s.Step != StepNote {
		t.Errorf("step = %d, want %d", s.Step, StepNote)
	}
}

func TestWeightTierGate(t *testing.T) {
	s := NewSession(testCatalog(), Options{Occasion: "qurban", Product: "whole_sheep"})
	s.Apply(Patch{
		SpecialCutID:    strptr("leg"),
		SpecialCutLabel: strptr("Leg cut"),
		SlaughterDate:   strptr("2025-06-01"),
	})
	s.Step = StepExtras

	if s.CanAdvance() {
		t.Fatal("whole_sheep has tiers; the gate must require a selection")
	}
	s.Apply(Patch{WeightSelection: strptr("w99")})
	if s.CanAdvance() {
		t.Fatal("selection outside the closed tier set must not satisfy the gate")
	}
	s.Apply(Patch{WeightSelection: strptr("w45")})
	if !s.CanAdvance() {
		t.Fatal("valid tier selection rejected")
	}
	if s.State.WeightLabel != "45 kg" {
		t.Errorf("weight label = %q, want 45 kg", s.State.WeightLabel)
	}

	minPrice, maxPrice, label := s.PriceRange()
	if minPrice != 1250 || maxPrice != 1250 {
		t.Errorf("tier price range = %v–%v, want 1250–1250", minPrice, maxPrice)
	}
	if label != "Whole Sheep" {
		t.Errorf("product label = %q", label)
	}
}

// The full scenario from the order flow: personal half goat, leg cut, pickup.
func TestSubmitScenario(t *testing.T) {
	s := NewSession(testCatalog(), Options{})
	s.Apply(Patch{
		Occasion:        strptr("personal"),
		Animal:          strptr("goat"),
		Portion:         strptr("half"),
		SpecialCutID:    strptr("leg"),
		SpecialCutLabel: strptr("Leg cut"),
		SlaughterDate:   strptr("2025-06-01"),
		Distribution:    strptr("pickup"),
	})

	item, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if item.Product != "half_goat" {
		t.Errorf("product = %q, want half_goat", item.Product)
	}
	if item.SpecialCutLabel != "Leg cut" {
		t.Errorf("cut label = %q", item.SpecialCutLabel)
	}
	if item.MinPrice != 400 || item.MaxPrice != 600 {
		t.Errorf("price range = %v–%v, want 400–600", item.MinPrice, item.MaxPrice)
	}
	if item.WeightSelection != WeightAsIs {
		t.Errorf("weight selection = %q, want %q", item.WeightSelection, WeightAsIs)
	}
	if item.ProductLabel != "½ Goat" {
		t.Errorf("product label = %q", item.ProductLabel)
	}
}

func TestSubmitIncomplete(t *testing.T) {
	s := NewSession(testCatalog(), Options{})
	s.Apply(Patch{Occasion: strptr("personal"), Animal: strptr("goat")})
	if _, err := s.Submit(); err == nil {
		t.Error("Submit should fail without portion and cut")
	}
}

// The selection sets are closed: values outside them never enter the state,
// so no synthetic product can reach the cart.
func TestApplyRejectsUnknownSelections(t *testing.T) {
	s := NewSession(testCatalog(), Options{})
	s.Apply(Patch{Occasion: strptr("party"), Animal: strptr("dragon"), Portion: strptr("quarter")})
	if s.State.Occasion != "" || s.State.Animal != "" || s.State.Portion != "" {
		t.Fatalf("out-of-set selections entered the state: %+v", s.State)
	}
	if s.CanAdvance() {
		t.Error("step 1 gate satisfied by a rejected occasion")
	}

	s.Apply(Patch{Occasion: strptr("personal"), Animal: strptr("goat"), Portion: strptr("half")})
	s.Apply(Patch{Animal: strptr("unicorn")})
	if s.State.Animal != "goat" {
		t.Errorf("animal = %q, valid selection overwritten by a rejected one", s.State.Animal)
	}
	if got := s.Product(); got != "half_goat" {
		t.Errorf("product = %q, want half_goat", got)
	}

	if _, err := s.Submit(); err == nil {
		t.Error("Submit should still require cut and date")
	}

	// Entry shortcuts go through the same validation.
	s = NewSession(testCatalog(), Options{Occasion: "party"})
	if s.Step != StepOccasion || s.State.Occasion != "" {
		t.Errorf("unknown occasion shortcut: step = %d, occasion = %q", s.Step, s.State.Occasion)
	}
	s = NewSession(testCatalog(), Options{Occasion: "party", Product: "whole_goat"})
	if s.State.Occasion != "" {
		t.Errorf("unknown occasion kept on product shortcut: %q", s.State.Occasion)
	}
}

// The schedule gate is re-checked at submit time, same as the cut: an item
// must never land in the cart without a slaughter date.
func TestSubmitRequiresSlaughterDate(t *testing.T) {
	s := NewSession(testCatalog(), Options{})
	s.Apply(Patch{
		Occasion:        strptr("personal"),
		Animal:          strptr("goat"),
		Portion:         strptr("half"),
		SpecialCutID:    strptr("leg"),
		SpecialCutLabel: strptr("Leg cut"),
	})
	if _, err := s.Submit(); err != ErrNotSubmittable {
		t.Fatalf("Submit without a date: err = %v, want ErrNotSubmittable", err)
	}

	s.Apply(Patch{SlaughterDate: strptr("   ")})
	if _, err := s.Submit(); err != ErrNotSubmittable {
		t.Fatalf("Submit with a blank date: err = %v, want ErrNotSubmittable", err)
	}

	s.Apply(Patch{SlaughterDate: strptr("2025-06-01")})
	item, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if item.SlaughterDate != "2025-06-01" {
		t.Errorf("slaughter date = %q", item.SlaughterDate)
	}
}

func TestEntryShortcuts(t *testing.T) {
	// Pre-selected product starts at step 4 with animal and portion derived.
	s := NewSession(testCatalog(), Options{Occasion: "qurban", Product: "whole_goat"})
	if s.Step != StepCut {
		t.Errorf("product shortcut: step = %d, want %d", s.Step, StepCut)
	}
	if s.State.Animal != "goat" || s.State.Portion != "whole" {
		t.Errorf("product shortcut state: %+v", s.State)
	}

	// Occasion only starts at step 2.
	s = NewSession(testCatalog(), Options{Occasion: "aqiqah"})
	if s.Step != StepAnimal {
		t.Errorf("occasion shortcut: step = %d, want %d", s.Step, StepAnimal)
	}

	// A half product under a ritual occasion is normalized at entry.
	s = NewSession(testCatalog(), Options{Occasion: "qurban", Product: "half_goat"})
	if s.State.Portion != "whole" {
		t.Errorf("entry normalization: portion = %q, want whole", s.State.Portion)
	}
}

func TestEditModeReconstruction(t *testing.T) {
	item := &cart.LineItem{
		ID:              "item-1",
		Occasion:        "personal",
		Product:         "half_sheep",
		SpecialCutID:    "shoulder",
		SpecialCutLabel: "Shoulder cut",
		SlaughterDate:   "2025-07-10",
		Distribution:    "delivery",
		WeightSelection: WeightAsIs,
		Note:            "ring the bell",
		MinPrice:        500,
		MaxPrice:        700,
		ProductLabel:    "½ Sheep",
	}

	s := NewSession(testCatalog(), Options{EditItem: item})
	if s.Step != StepOccasion {
		t.Errorf("edit mode restarts at step 1, got %d", s.Step)
	}
	if s.EditItemID != "item-1" {
		t.Errorf("edit item id = %q", s.EditItemID)
	}
	if s.State.Animal != "sheep" || s.State.Portion != "half" {
		t.Errorf("reconstructed state: %+v", s.State)
	}
	if s.State.Note != "ring the bell" {
		t.Errorf("note lost: %q", s.State.Note)
	}

	// All gates are already satisfied; the flow can be re-walked directly.
	for s.Step < StepNote {
		if err := s.Next(); err != nil {
			t.Fatalf("step %d should be pre-satisfied: %v", s.Step, err)
		}
	}
}

func TestSlaughterDateWindow(t *testing.T) {
	now := time.Date(2025, 5, 30, 15, 4, 5, 0, time.UTC)
	options := SlaughterDateWindow(now, "en")
	if len(options) != SlaughterDateWindowDays {
		t.Fatalf("window size = %d, want %d", len(options), SlaughterDateWindowDays)
	}
	if options[0].Value != "2025-05-30" {
		t.Errorf("window starts at %s, want today", options[0].Value)
	}
	if options[2].Value != "2025-06-01" {
		t.Errorf("rolling value = %s, want 2025-06-01", options[2].Value)
	}
	if options[0].Label == "" {
		t.Error("empty label")
	}

	for _, locale := range []string{"ar", "ms", "zh"} {
		localized := SlaughterDateWindow(now, locale)
		if localized[0].Label == options[0].Label {
			t.Errorf("locale %s label not localized: %q", locale, localized[0].Label)
		}
	}
}

func TestBackStopsAtFirstStep(t *testing.T) {
	s := NewSession(testCatalog(), Options{Occasion: "personal"})
	s.Back()
	if s.Step != StepOccasion {
		t.Errorf("step = %d, want %d", s.Step, StepOccasion)
	}
	s.Back()
	if s.Step != StepOccasion {
		t.Error("Back went below step 1")
	}
}
