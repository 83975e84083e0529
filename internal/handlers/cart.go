package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/kordoba/internal/cart"
	"github.com/example/kordoba/internal/content"
	"github.com/example/kordoba/internal/services"
)

// CartCookieName keys the session-scoped cart.
const CartCookieName = "cart_session"

func setCartCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     CartCookieName,
		Value:    id,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// CartHandler exposes the session cart and the complete-order message flow.
type CartHandler struct {
	carts    *cart.Manager
	resolver *content.Resolver
	whatsapp *services.WhatsAppService
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(carts *cart.Manager, resolver *content.Resolver, whatsapp *services.WhatsAppService) *CartHandler {
	return &CartHandler{carts: carts, resolver: resolver, whatsapp: whatsapp}
}

func (h *CartHandler) store(c *fiber.Ctx) *cart.Store {
	id, store := h.carts.Session(c.Cookies(CartCookieName))
	setCartCookie(c, id)
	return store
}

// List returns the cart items in insertion order.
func (h *CartHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store(c).List()})
}

// GetItem returns one cart item by id.
func (h *CartHandler) GetItem(c *fiber.Ctx) error {
	item, ok := h.store(c).Get(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// RemoveItem deletes one cart item.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	h.store(c).Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.store(c).Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// localizedLabels pulls one section of the locale bundle as a flat string map.
func localizedLabels(messages map[string]any, section string) map[string]string {
	out := map[string]string{}
	sub, ok := messages[section].(map[string]any)
	if !ok {
		return out
	}
	for key, value := range sub {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}

// ComposeMessage renders the whole cart as a WhatsApp order message and
// returns it together with the click-to-chat link. The cart survives; it is
// cleared only when the customer confirms the hand-off.
func (h *CartHandler) ComposeMessage(c *fiber.Ctx) error {
	items := h.store(c).List()
	if len(items) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "cart is empty")
	}

	locale := requestLocale(c)
	messages := h.resolver.MessagesForLocale(locale)

	hint := "We will confirm your order on WhatsApp."
	if cartSection, ok := messages["cart"].(map[string]any); ok {
		if s, ok := cartSection["completeOrderHint"].(string); ok && s != "" {
			hint = s
		}
	}

	message := services.BuildCartMessage(
		items,
		localizedLabels(messages, "purpose"),
		localizedLabels(messages, "orderDetails"),
		hint,
	)
	link := h.whatsapp.Link(h.resolver.Setting(content.SettingWhatsAppLink), message)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"message": message,
			"link":    link,
		},
	})
}
