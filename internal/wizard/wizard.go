// Package wizard implements the seven-step order flow: occasion, animal,
// portion, special cut, schedule, extras, note. Each step gates forward
// progress on the accumulated state, and completing the flow synthesizes a
// cart line item with an add-time price snapshot.
package wizard

import (
	"errors"
	"strings"

	"github.com/example/kordoba/internal/cart"
	"github.com/example/kordoba/internal/content"
)

// Step numbers. The flow is linear from StepOccasion to StepNote.
const (
	StepOccasion = 1
	StepAnimal   = 2
	StepPortion  = 3
	StepCut      = 4
	StepSchedule = 5
	StepExtras   = 6
	StepNote     = 7
)

// WeightAsIs is the sentinel weight selection for products with no
// configured weight tiers.
const WeightAsIs = "as_is"

var (
	// ErrStepIncomplete is returned by Next when the current step's gate
	// predicate is not satisfied.
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")
	// ErrNotSubmittable is returned by Submit when the accumulated state
	// cannot produce a line item.
	ErrNotSubmittable = errors.New("wizard: order is incomplete")
)

// Occasions, Animals and Portions are the closed selection sets.
var (
	Occasions = []string{"qurban", "aqiqah", "personal"}
	Animals   = []string{"sheep", "goat"}
	Portions  = []string{"half", "whole"}
)

// State is the transient wizard state, alive only for the wizard session.
type State struct {
	Occasion          string `json:"occasion"`
	Animal            string `json:"animal"`
	Portion           string `json:"portion"`
	SpecialCutID      string `json:"special_cut_id"`
	SpecialCutLabel   string `json:"special_cut_label"`
	SlaughterDate     string `json:"slaughter_date"`
	Distribution      string `json:"distribution"`
	WeightSelection   string `json:"weight_selection"`
	WeightLabel       string `json:"weight_label"`
	VideoProof        bool   `json:"video_proof"`
	IncludeHead       bool   `json:"include_head"`
	IncludeStomach    bool   `json:"include_stomach"`
	IncludeIntestines bool   `json:"include_intestines"`
	Note              string `json:"note"`
}

// Patch is a partial state update. Nil fields are left untouched.
type Patch struct {
	Occasion          *string `json:"occasion"`
	Animal            *string `json:"animal"`
	Portion           *string `json:"portion"`
	SpecialCutID      *string `json:"special_cut_id"`
	SpecialCutLabel   *string `json:"special_cut_label"`
	SlaughterDate     *string `json:"slaughter_date"`
	Distribution      *string `json:"distribution"`
	WeightSelection   *string `json:"weight_selection"`
	VideoProof        *bool   `json:"video_proof"`
	IncludeHead       *bool   `json:"include_head"`
	IncludeStomach    *bool   `json:"include_stomach"`
	IncludeIntestines *bool   `json:"include_intestines"`
	Note              *string `json:"note"`
}

// Catalog is the content snapshot a wizard session works against.
type Catalog struct {
	Products map[string]content.ProductConfig
	Weights  map[string][]content.WeightOption
}

// Options select the wizard entry point.
type Options struct {
	// Occasion pre-selects the occasion and starts the flow at step 2.
	Occasion string
	// Product pre-selects animal and portion and starts the flow at step 4.
	Product string
	// EditItem reconstructs the state from a cart item; the flow restarts at
	// step 1 with every field populated.
	EditItem *cart.LineItem
}

// Session is one customer's pass through the wizard.
type Session struct {
	Step       int
	State      State
	EditItemID string
	catalog    Catalog
}

func validProduct(product string) bool {
	switch product {
	case "half_sheep", "half_goat", "whole_sheep", "whole_goat":
		return true
	}
	return false
}

func inSet(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func splitProduct(product string) (portion, animal string) {
	parts := strings.SplitN(product, "_", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// NewSession starts a wizard session at the entry point the options select.
func NewSession(catalog Catalog, opts Options) *Session {
	s := &Session{
		Step:    StepOccasion,
		State:   State{Distribution: "delivery"},
		catalog: catalog,
	}

	switch {
	case opts.EditItem != nil:
		item := opts.EditItem
		portion, animal := splitProduct(item.Product)
		s.EditItemID = item.ID
		s.State = State{
			Occasion:          item.Occasion,
			Animal:            animal,
			Portion:           portion,
			SpecialCutID:      item.SpecialCutID,
			SpecialCutLabel:   item.SpecialCutLabel,
			SlaughterDate:     item.SlaughterDate,
			Distribution:      item.Distribution,
			WeightSelection:   item.WeightSelection,
			WeightLabel:       item.WeightLabel,
			VideoProof:        item.VideoProof,
			IncludeHead:       item.IncludeHead,
			IncludeStomach:    item.IncludeStomach,
			IncludeIntestines: item.IncludeIntestines,
			Note:              item.Note,
		}
		s.Step = StepOccasion
	case validProduct(opts.Product):
		portion, animal := splitProduct(opts.Product)
		if inSet(Occasions, opts.Occasion) {
			s.State.Occasion = opts.Occasion
		}
		s.State.Animal = animal
		s.State.Portion = portion
		s.Step = StepCut
	case inSet(Occasions, opts.Occasion):
		s.State.Occasion = opts.Occasion
		s.Step = StepAnimal
	}

	s.normalize()
	return s
}

// Product derives the product type from the selections, or "" until both
// animal and portion are chosen.
func (s *Session) Product() string {
	return StateToProduct(s.State)
}

// StateToProduct returns "<portion>_<animal>", or "" unless both parts are
// set.
func StateToProduct(state State) string {
	if state.Animal == "" || state.Portion == "" {
		return ""
	}
	return state.Portion + "_" + state.Animal
}

// Apply merges a partial update into the state and re-runs the invariant
// guard. Half portions are only sold for personal consumption, so changing
// the occasion away from personal forces the portion back to whole.
// Occasion, animal and portion values outside their closed sets are ignored.
func (s *Session) Apply(patch Patch) {
	st := &s.State
	if patch.Occasion != nil && inSet(Occasions, *patch.Occasion) {
		st.Occasion = *patch.Occasion
	}
	if patch.Animal != nil && inSet(Animals, *patch.Animal) {
		st.Animal = *patch.Animal
	}
	if patch.Portion != nil && inSet(Portions, *patch.Portion) {
		st.Portion = *patch.Portion
	}
	if patch.SpecialCutID != nil {
		st.SpecialCutID = *patch.SpecialCutID
	}
	if patch.SpecialCutLabel != nil {
		st.SpecialCutLabel = *patch.SpecialCutLabel
	}
	if patch.SlaughterDate != nil {
		st.SlaughterDate = *patch.SlaughterDate
	}
	if patch.Distribution != nil {
		st.Distribution = *patch.Distribution
	}
	if patch.WeightSelection != nil {
		st.WeightSelection = *patch.WeightSelection
		st.WeightLabel = ""
		for _, w := range s.weightOptions() {
			if w.ID == st.WeightSelection {
				st.WeightLabel = w.Label
			}
		}
	}
	if patch.VideoProof != nil {
		st.VideoProof = *patch.VideoProof
	}
	if patch.IncludeHead != nil {
		st.IncludeHead = *patch.IncludeHead
	}
	if patch.IncludeStomach != nil {
		st.IncludeStomach = *patch.IncludeStomach
	}
	if patch.IncludeIntestines != nil {
		st.IncludeIntestines = *patch.IncludeIntestines
	}
	if patch.Note != nil {
		st.Note = *patch.Note
	}

	s.normalize()
}

// normalize restores the portion invariant on every state change: half is
// personal-only.
func (s *Session) normalize() {
	if s.State.Occasion != "" && s.State.Occasion != "personal" {
		if s.State.Portion == "half" {
			s.State.Portion = "whole"
		}
	}
}

func (s *Session) weightOptions() []content.WeightOption {
	product := s.Product()
	if product == "" {
		return nil
	}
	return s.catalog.Weights[product]
}

// CanAdvance evaluates the current step's gate predicate.
func (s *Session) CanAdvance() bool {
	st := s.State
	switch s.Step {
	case StepOccasion:
		return st.Occasion != ""
	case StepAnimal:
		return st.Animal != ""
	case StepPortion:
		return st.Portion != ""
	case StepCut:
		return st.SpecialCutID != ""
	case StepSchedule:
		// The cut is re-checked here, not just at step 4.
		return strings.TrimSpace(st.SlaughterDate) != "" && st.SpecialCutID != ""
	case StepExtras:
		weights := s.weightOptions()
		if len(weights) == 0 {
			return true
		}
		for _, w := range weights {
			if w.ID == st.WeightSelection {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Next advances to the following step once the current gate is satisfied.
func (s *Session) Next() error {
	if s.Step >= StepNote {
		return ErrStepIncomplete
	}
	if !s.CanAdvance() {
		return ErrStepIncomplete
	}
	s.Step++
	return nil
}

// Back moves one step backwards, stopping at step 1.
func (s *Session) Back() {
	if s.Step > StepOccasion {
		s.Step--
	}
}

// PriceRange returns the add-time price snapshot: the selected weight tier's
// price when the product has tiers and one is chosen, otherwise the
// product's configured min/max.
func (s *Session) PriceRange() (minPrice, maxPrice float64, productLabel string) {
	product := s.Product()
	config, ok := s.catalog.Products[product]
	if !ok {
		return 0, 0, product
	}
	if st := s.State; st.WeightSelection != "" {
		for _, w := range s.weightOptions() {
			if w.ID == st.WeightSelection {
				return w.Price, w.Price, config.Label
			}
		}
	}
	return config.MinPrice, config.MaxPrice, config.Label
}

// Submit synthesizes the cart line item from the accumulated state. The
// caller inserts it as a new cart entry, or overwrites the entry named by
// EditItemID when the session was started in edit mode.
func (s *Session) Submit() (cart.LineItem, error) {
	product := s.Product()
	if product == "" || s.State.Occasion == "" || s.State.SpecialCutID == "" ||
		strings.TrimSpace(s.State.SlaughterDate) == "" {
		return cart.LineItem{}, ErrNotSubmittable
	}

	weightSelection := s.State.WeightSelection
	if weightSelection == "" {
		weightSelection = WeightAsIs
	}

	minPrice, maxPrice, productLabel := s.PriceRange()

	return cart.LineItem{
		Occasion:          s.State.Occasion,
		Product:           product,
		SpecialCutID:      s.State.SpecialCutID,
		SpecialCutLabel:   s.State.SpecialCutLabel,
		SlaughterDate:     s.State.SlaughterDate,
		Distribution:      s.State.Distribution,
		WeightSelection:   weightSelection,
		WeightLabel:       s.State.WeightLabel,
		VideoProof:        s.State.VideoProof,
		IncludeHead:       s.State.IncludeHead,
		IncludeStomach:    s.State.IncludeStomach,
		IncludeIntestines: s.State.IncludeIntestines,
		Note:              s.State.Note,
		MinPrice:          minPrice,
		MaxPrice:          maxPrice,
		ProductLabel:      productLabel,
	}, nil
}
