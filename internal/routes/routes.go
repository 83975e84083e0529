package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/kordoba/internal/cart"
	"github.com/example/kordoba/internal/config"
	"github.com/example/kordoba/internal/content"
	"github.com/example/kordoba/internal/handlers"
	"github.com/example/kordoba/internal/middleware"
	"github.com/example/kordoba/internal/services"
	"github.com/example/kordoba/internal/wizard"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	resolver := content.NewResolver(db)
	whatsappService := services.NewWhatsAppService(cfg.WhatsAppLink)
	carts := cart.NewManager()
	wizards := wizard.NewRegistry()
	adminAuth := middleware.NewAdminAuth(cfg)

	authHandler := handlers.NewAuthHandler(adminAuth)
	contentHandler := handlers.NewContentHandler(resolver)
	wizardHandler := handlers.NewWizardHandler(wizards, resolver, carts)
	cartHandler := handlers.NewCartHandler(carts, resolver, whatsappService)
	animalHandler := handlers.NewAnimalHandler(db)
	checkoutHandler := handlers.NewCheckoutHandler(db, cfg)
	webhookHandler := handlers.NewStripeWebhookHandler(db, cfg)
	adminContentHandler := handlers.NewAdminContentHandler(db)
	uploadHandler := handlers.NewUploadHandler(cfg)

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Public content
	api.Get("/content/products", contentHandler.ListProducts)
	api.Get("/content/products/:productType", contentHandler.GetProduct)
	api.Get("/content/special-cuts", contentHandler.ListSpecialCuts)
	api.Get("/content/theme", contentHandler.GetTheme)
	api.Get("/content/messages/:locale", contentHandler.GetMessages)
	api.Get("/content/site", contentHandler.GetSiteInfo)

	// Order wizard
	wizardGroup := api.Group("/wizard")
	wizardGroup.Post("/start", wizardHandler.Start)
	wizardGroup.Get("/", wizardHandler.State)
	wizardGroup.Patch("/", wizardHandler.Update)
	wizardGroup.Post("/next", wizardHandler.Next)
	wizardGroup.Post("/back", wizardHandler.Back)
	wizardGroup.Post("/submit", wizardHandler.Submit)

	// Cart
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.List)
	cartGroup.Get("/message", cartHandler.ComposeMessage)
	cartGroup.Get("/:id", cartHandler.GetItem)
	cartGroup.Delete("/:id", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.Clear)

	// Livestock inventory and checkout
	api.Get("/animals", animalHandler.ListAnimals)
	api.Get("/animals/:id", animalHandler.GetAnimal)
	api.Post("/checkout", checkoutHandler.Checkout)
	api.Post("/webhooks/stripe", webhookHandler.Handle)

	// Admin
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Post("/logout", authHandler.Logout)
	admin.Get("/session", authHandler.Session)

	guarded := admin.Group("/", adminAuth.RequireAdmin())
	guarded.Post("/upload", uploadHandler.Upload)
	guarded.Get("/orders", checkoutHandler.ListOrders)

	adminContent := guarded.Group("/content")
	adminContent.Get("/products", adminContentHandler.ListProducts)
	adminContent.Patch("/products", adminContentHandler.UpdateProduct)
	adminContent.Get("/products/:productType/weights", adminContentHandler.GetProductWeights)
	adminContent.Put("/products/:productType/weights", adminContentHandler.ReplaceProductWeights)
	adminContent.Get("/special-cuts", adminContentHandler.ListSpecialCuts)
	adminContent.Patch("/special-cuts", adminContentHandler.UpdateSpecialCut)
	adminContent.Get("/weight-options", adminContentHandler.ListWeightOptions)
	adminContent.Post("/weight-options", adminContentHandler.CreateWeightOption)
	adminContent.Patch("/weight-options/:id", adminContentHandler.UpdateWeightOption)
	adminContent.Delete("/weight-options/:id", adminContentHandler.DeleteWeightOption)
	adminContent.Get("/settings", adminContentHandler.ListSettings)
	adminContent.Patch("/settings", adminContentHandler.UpdateSetting)
	adminContent.Get("/translations", adminContentHandler.ListTranslations)
	adminContent.Patch("/translations", adminContentHandler.UpsertTranslation)
	adminContent.Get("/template-presets", adminContentHandler.ListTemplatePresets)

	adminAnimals := guarded.Group("/animals")
	adminAnimals.Post("/", animalHandler.CreateAnimal)
	adminAnimals.Put("/:id", animalHandler.UpdateAnimal)
	adminAnimals.Delete("/:id", animalHandler.DeleteAnimal)
}
