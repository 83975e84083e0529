package handlers

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"gorm.io/gorm"

	"github.com/example/kordoba/internal/config"
	"github.com/example/kordoba/internal/models"
	"github.com/example/kordoba/internal/utils"
)

// CheckoutHandler implements the optional card payment path: reserve an
// animal, persist a pending order and hand the customer to Stripe Checkout.
type CheckoutHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(db *gorm.DB, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{db: db, cfg: cfg}
}

type checkoutRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Country           string  `json:"country"`
	Language          string  `json:"language"`
	AnimalID          string  `json:"animal_id"`
	Purpose           string  `json:"purpose"`
	City              string  `json:"city"`
	SlaughterDate     string  `json:"slaughter_date"`
	DistributionType  string  `json:"distribution_type"`
	NameTag           string  `json:"name_tag"`
	VideoProof        bool    `json:"video_proof"`
	WeightSelection   string  `json:"weight_selection"`
	SpecialCut        string  `json:"special_cut"`
	IncludeHead       bool    `json:"include_head"`
	IncludeStomach    bool    `json:"include_stomach"`
	IncludeIntestines bool    `json:"include_intestines"`
	Note              string  `json:"note"`
	TotalPrice        float64 `json:"total_price"`
}

// Checkout validates the request, upserts the customer by email and creates a
// pending order. With a Stripe key configured the response carries the hosted
// checkout URL; without one the order is created and payment is left offline.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var payload checkoutRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name == "" || payload.Email == "" || payload.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and phone are required")
	}
	if payload.TotalPrice <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "total price must be positive")
	}

	animalID, err := uuid.Parse(payload.AnimalID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid animal id")
	}
	slaughterDate, err := time.Parse("2006-01-02", payload.SlaughterDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid slaughter date")
	}

	var animal models.Animal
	if err := h.db.First(&animal, "id = ? AND status = ?", animalID, models.AnimalAvailable).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusConflict, "animal no longer available")
		}
		return err
	}

	var user models.User
	err = h.db.First(&user, "email = ?", payload.Email).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		user = models.User{
			Name:     payload.Name,
			Email:    payload.Email,
			Phone:    payload.Phone,
			Country:  payload.Country,
			Language: payload.Language,
		}
		if err := h.db.Create(&user).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	}

	order := models.Order{
		UserID:            user.ID,
		AnimalID:          animal.ID,
		Purpose:           payload.Purpose,
		City:              payload.City,
		SlaughterDate:     slaughterDate,
		DistributionType:  payload.DistributionType,
		TotalPrice:        payload.TotalPrice,
		PaymentStatus:     "pending",
		OrderStatus:       "reserved",
		NameTag:           payload.NameTag,
		VideoProofOpt:     payload.VideoProof,
		WeightSelection:   payload.WeightSelection,
		SpecialCut:        payload.SpecialCut,
		IncludeHead:       payload.IncludeHead,
		IncludeStomach:    payload.IncludeStomach,
		IncludeIntestines: payload.IncludeIntestines,
		Note:              payload.Note,
	}
	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	if h.cfg.StripeSecretKey == "" {
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"order_id": order.ID,
				"message":  "order created, configure Stripe for payment",
			},
		})
	}

	checkoutURL, err := h.createStripeSession(&order, &animal, payload.SlaughterDate)
	if err != nil {
		log.Printf("[checkout] stripe session for order %s: %v", order.ID, err)
		return fiber.NewError(fiber.StatusBadGateway, "payment provider unavailable")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order_id": order.ID,
			"url":      checkoutURL,
		},
	})
}

// ListOrders returns paginated orders for the admin dashboard.
func (h *CheckoutHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Order{})
	if status := c.Query("payment_status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("User").Preload("Animal").
		Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

func (h *CheckoutHandler) createStripeSession(order *models.Order, animal *models.Animal, slaughterDate string) (string, error) {
	stripe.Key = h.cfg.StripeSecretKey

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "fpx"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("myr"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("%s · Tag %s", animal.Breed, animal.TagNumber)),
					Description: stripe.String(fmt.Sprintf("Qurban / Aqiqah · %.0f kg · Slaughter: %s",
						animal.Weight, slaughterDate)),
				},
				UnitAmount: stripe.Int64(int64(order.TotalPrice * 100)),
			},
			Quantity: stripe.Int64(1),
		}},
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/en/dashboard?order=%s&session_id={CHECKOUT_SESSION_ID}",
			h.cfg.AppURL, order.ID)),
		CancelURL: stripe.String(fmt.Sprintf("%s/en/checkout?animal=%s",
			h.cfg.AppURL, url.QueryEscape(animal.TagNumber))),
		ClientReferenceID: stripe.String(order.ID.String()),
	}
	if animal.ImageURL != "" {
		params.LineItems[0].PriceData.ProductData.Images = stripe.StringSlice([]string{animal.ImageURL})
	}
	params.AddMetadata("order_id", order.ID.String())

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
