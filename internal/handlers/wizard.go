package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/kordoba/internal/cart"
	"github.com/example/kordoba/internal/content"
	"github.com/example/kordoba/internal/utils"
	"github.com/example/kordoba/internal/wizard"
)

// WizardCookieName keys the server-side wizard session.
const WizardCookieName = "wizard_session"

// WizardHandler drives the seven-step order flow. Sessions live server-side
// in a registry keyed by an opaque cookie.
type WizardHandler struct {
	registry *wizard.Registry
	resolver *content.Resolver
	carts    *cart.Manager
}

// NewWizardHandler constructs WizardHandler.
func NewWizardHandler(registry *wizard.Registry, resolver *content.Resolver, carts *cart.Manager) *WizardHandler {
	return &WizardHandler{registry: registry, resolver: resolver, carts: carts}
}

// catalog snapshots the content a session needs for gating and pricing.
func (h *WizardHandler) catalog(locale, occasion string) wizard.Catalog {
	products := map[string]content.ProductConfig{}
	weights := map[string][]content.WeightOption{}
	for _, p := range h.resolver.Products(locale, occasion) {
		products[p.ProductType] = p
		weights[p.ProductType] = h.resolver.ProductWeights(p.ProductType)
	}
	return wizard.Catalog{Products: products, Weights: weights}
}

func (h *WizardHandler) sessionView(c *fiber.Ctx, s *wizard.Session) fiber.Map {
	locale := requestLocale(c)
	minPrice, maxPrice, productLabel := s.PriceRange()

	view := fiber.Map{
		"step":          s.Step,
		"state":         s.State,
		"product":       s.Product(),
		"product_label": productLabel,
		"min_price":     minPrice,
		"max_price":     maxPrice,
		"price_range":   utils.FormatPriceRange(minPrice, maxPrice, ""),
		"can_advance":   s.CanAdvance(),
		"editing":       s.EditItemID != "",
	}
	if s.Step == wizard.StepSchedule {
		view["dates"] = wizard.SlaughterDateWindow(time.Now(), locale)
		view["cities"] = h.resolver.Cities()
	}
	if s.Step == wizard.StepCut {
		view["special_cuts"] = h.resolver.SpecialCuts(locale, s.State.Occasion)
	}
	return view
}

type wizardStartRequest struct {
	Occasion   string `json:"occasion"`
	Product    string `json:"product"`
	EditItemID string `json:"edit_item_id"`
}

// Start opens a session. An occasion skips to step 2, a product to step 4,
// and an edit item id reconstructs the full state from the cart.
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	var payload wizardStartRequest
	if err := c.BodyParser(&payload); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	opts := wizard.Options{Occasion: payload.Occasion, Product: payload.Product}
	if payload.EditItemID != "" {
		_, store := h.carts.Session(c.Cookies(CartCookieName))
		item, ok := store.Get(payload.EditItemID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "cart item not found")
		}
		opts.EditItem = &item
	}

	locale := requestLocale(c)
	id, s := h.registry.Start(h.catalog(locale, payload.Occasion), opts)

	c.Cookie(&fiber.Cookie{
		Name:     WizardCookieName,
		Value:    id,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true, "data": h.sessionView(c, s)})
}

func (h *WizardHandler) session(c *fiber.Ctx) (*wizard.Session, error) {
	s, ok := h.registry.Get(c.Cookies(WizardCookieName))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "no active wizard session")
	}
	return s, nil
}

// State returns the current session view.
func (h *WizardHandler) State(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": h.sessionView(c, s)})
}

// Update applies a partial state patch.
func (h *WizardHandler) Update(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}

	var patch wizard.Patch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	s.Apply(patch)
	return c.JSON(fiber.Map{"success": true, "data": h.sessionView(c, s)})
}

// Next advances one step when the current gate is satisfied.
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	if err := s.Next(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "current step is incomplete")
	}
	return c.JSON(fiber.Map{"success": true, "data": h.sessionView(c, s)})
}

// Back moves one step backwards.
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.Back()
	return c.JSON(fiber.Map{"success": true, "data": h.sessionView(c, s)})
}

// Submit turns the session into a cart line item and closes the session. In
// edit mode the existing item is overwritten in place.
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}

	item, err := s.Submit()
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "order is incomplete")
	}

	cartID, store := h.carts.Session(c.Cookies(CartCookieName))
	if s.EditItemID != "" {
		item.ID = s.EditItemID
		store.Update(s.EditItemID, item)
	} else {
		item.ID = store.Add(item)
	}

	h.registry.End(c.Cookies(WizardCookieName))
	c.Cookie(&fiber.Cookie{Name: WizardCookieName, Value: "", MaxAge: -1, Path: "/"})
	setCartCookie(c, cartID)

	return c.JSON(fiber.Map{"success": true, "data": item})
}
