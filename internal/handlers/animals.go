package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/kordoba/internal/models"
	"github.com/example/kordoba/internal/utils"
)

// AnimalHandler serves the livestock inventory behind the card checkout path.
type AnimalHandler struct {
	db *gorm.DB
}

// NewAnimalHandler constructs AnimalHandler.
func NewAnimalHandler(db *gorm.DB) *AnimalHandler {
	return &AnimalHandler{db: db}
}

// ListAnimals returns paginated animals. Defaults to available stock; pass
// status=all to include reserved and sold heads, or product_type to filter.
func (h *AnimalHandler) ListAnimals(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Animal{})
	if status := c.Query("status", models.AnimalAvailable); status != "all" {
		query = query.Where("status = ?", status)
	}
	if productType := c.Query("product_type"); productType != "" {
		query = query.Where("product_type = ?", productType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var animals []models.Animal
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("ready_date asc").
		Find(&animals).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": animals, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

// GetAnimal returns one animal by id or tag number.
func (h *AnimalHandler) GetAnimal(c *fiber.Ctx) error {
	ref := c.Params("id")

	var animal models.Animal
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		err = h.db.First(&animal, "id = ?", id).Error
	} else {
		err = h.db.First(&animal, "tag_number = ?", ref).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "animal not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": animal})
}

// CreateAnimal registers a new head of livestock.
func (h *AnimalHandler) CreateAnimal(c *fiber.Ctx) error {
	var payload models.Animal
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.TagNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "tag_number is required")
	}
	if payload.Status == "" {
		payload.Status = models.AnimalAvailable
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateAnimal updates an existing animal.
func (h *AnimalHandler) UpdateAnimal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var animal models.Animal
	if err := h.db.First(&animal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "animal not found")
		}
		return err
	}

	var payload models.Animal
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = animal.ID
	if err := h.db.Model(&animal).Updates(payload).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": animal})
}

// DeleteAnimal removes an animal from the inventory.
func (h *AnimalHandler) DeleteAnimal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.Animal{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

