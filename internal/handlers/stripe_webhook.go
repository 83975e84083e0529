package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"github.com/example/kordoba/internal/config"
	"github.com/example/kordoba/internal/models"
)

// StripeWebhookHandler marks orders paid when Stripe reports a completed
// checkout session.
type StripeWebhookHandler struct {
	db     *gorm.DB
	secret string
}

// NewStripeWebhookHandler constructs StripeWebhookHandler.
func NewStripeWebhookHandler(db *gorm.DB, cfg *config.Config) *StripeWebhookHandler {
	return &StripeWebhookHandler{db: db, secret: cfg.StripeWebhookSecret}
}

// Handle verifies the event signature and processes checkout.session.completed.
func (h *StripeWebhookHandler) Handle(c *fiber.Ctx) error {
	if h.secret == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "webhook not configured")
	}

	sig := c.Get("Stripe-Signature")
	if sig == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no signature")
	}

	event, err := webhook.ConstructEvent(c.Body(), sig, h.secret)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid signature")
	}

	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("[stripe] malformed session payload: %v", err)
			return fiber.NewError(fiber.StatusBadRequest, "malformed event")
		}
		if err := h.completeOrder(&sess); err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"received": true})
}

func (h *StripeWebhookHandler) completeOrder(sess *stripe.CheckoutSession) error {
	orderID := sess.ClientReferenceID
	if id, ok := sess.Metadata["order_id"]; ok && id != "" {
		orderID = id
	}
	if orderID == "" {
		log.Printf("[stripe] completed session %s carries no order reference", sess.ID)
		return nil
	}

	paymentID := sess.ID
	if sess.PaymentIntent != nil {
		paymentID = sess.PaymentIntent.ID
	}

	return h.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				log.Printf("[stripe] completed session for unknown order %s", orderID)
				return nil
			}
			return err
		}

		updates := map[string]any{
			"payment_status":    "paid",
			"stripe_payment_id": paymentID,
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&models.Animal{}).
			Where("id = ?", order.AnimalID).
			Update("status", models.AnimalReserved).Error
	})
}
