package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/kordoba/internal/content"
	"github.com/example/kordoba/internal/services"
)

// ContentHandler serves the public storefront content: catalog, cuts, weight
// tiers, theme values and message bundles. Everything degrades to static
// defaults when the database has no content.
type ContentHandler struct {
	resolver *content.Resolver
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(resolver *content.Resolver) *ContentHandler {
	return &ContentHandler{resolver: resolver}
}

func requestLocale(c *fiber.Ctx) string {
	locale := c.Query("locale", "en")
	if !content.ValidLocale(locale) {
		return "en"
	}
	return locale
}

// ListProducts returns the catalog with images resolved for the requested
// locale and occasion.
func (h *ContentHandler) ListProducts(c *fiber.Ctx) error {
	locale := requestLocale(c)
	occasion := c.Query("occasion")
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.resolver.Products(locale, occasion),
	})
}

// GetProduct returns one catalog entry by product type.
func (h *ContentHandler) GetProduct(c *fiber.Ctx) error {
	locale := requestLocale(c)
	occasion := c.Query("occasion")

	product, ok := h.resolver.ProductConfig(c.Params("productType"), locale, occasion)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"product": product,
			"weights": h.resolver.ProductWeights(product.ProductType),
		},
	})
}

// ListSpecialCuts returns the butchering styles.
func (h *ContentHandler) ListSpecialCuts(c *fiber.Ctx) error {
	locale := requestLocale(c)
	occasion := c.Query("occasion")
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.resolver.SpecialCuts(locale, occasion),
	})
}

// GetTheme returns the active theme with its banner and hero values.
func (h *ContentHandler) GetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.resolver.ActiveTheme()})
}

// GetMessages returns the merged message bundle for a locale.
func (h *ContentHandler) GetMessages(c *fiber.Ctx) error {
	locale := c.Params("locale")
	if !content.ValidLocale(locale) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown locale")
	}
	return c.JSON(fiber.Map{"success": true, "data": h.resolver.MessagesForLocale(locale)})
}

// GetSiteInfo returns the storefront basics a client needs before rendering:
// locales, cities, the WhatsApp link and the delivery note.
func (h *ContentHandler) GetSiteInfo(c *fiber.Ctx) error {
	whatsapp := h.resolver.Setting(content.SettingWhatsAppLink)
	if whatsapp == "" {
		whatsapp = services.DefaultWhatsAppLink
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"locales":       content.Locales,
			"cities":        h.resolver.Cities(),
			"whatsapp_link": whatsapp,
			"delivery_note": h.resolver.Setting(content.SettingDeliveryNote),
			"theme":         h.resolver.ActiveTheme(),
		},
	})
}
