package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/kordoba/internal/content"
	"github.com/example/kordoba/internal/models"
	"github.com/example/kordoba/internal/services"
)

// AdminContentHandler manages the editable storefront content: products,
// special cuts, weight options, per-product weight sets, settings and
// translations.
type AdminContentHandler struct {
	db *gorm.DB
}

// NewAdminContentHandler constructs AdminContentHandler.
func NewAdminContentHandler(db *gorm.DB) *AdminContentHandler {
	return &AdminContentHandler{db: db}
}

// ListProducts returns every catalog row in sort order.
func (h *AdminContentHandler) ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Order("sort_order asc").Find(&products).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": products})
}

type productUpdateRequest struct {
	ProductType string `json:"product_type"`
	Data        struct {
		Label            *string            `json:"label"`
		MinPrice         *float64           `json:"min_price"`
		MaxPrice         *float64           `json:"max_price"`
		ImageURL         *string            `json:"image_url"`
		ImageURLByLocale *map[string]string `json:"image_url_by_locale"`
		SortOrder        *int               `json:"sort_order"`
	} `json:"data"`
}

// UpdateProduct patches a catalog row addressed by product type. Absent fields
// are left untouched.
func (h *AdminContentHandler) UpdateProduct(c *fiber.Ctx) error {
	var payload productUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.ProductType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_type is required")
	}

	var product models.Product
	if err := h.db.First(&product, "product_type = ?", payload.ProductType).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	updates := map[string]any{}
	d := payload.Data
	if d.Label != nil {
		if *d.Label == "" {
			return fiber.NewError(fiber.StatusBadRequest, "label must not be empty")
		}
		updates["label"] = *d.Label
	}
	if d.MinPrice != nil {
		updates["min_price"] = *d.MinPrice
	}
	if d.MaxPrice != nil {
		updates["max_price"] = *d.MaxPrice
	}
	if d.ImageURL != nil {
		updates["image_url"] = *d.ImageURL
	}
	if d.ImageURLByLocale != nil {
		encoded, err := json.Marshal(*d.ImageURLByLocale)
		if err != nil {
			return err
		}
		updates["image_url_by_locale"] = string(encoded)
	}
	if d.SortOrder != nil {
		updates["sort_order"] = *d.SortOrder
	}

	if len(updates) > 0 {
		if err := h.db.Model(&product).Updates(updates).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListSpecialCuts returns every cut row in sort order.
func (h *AdminContentHandler) ListSpecialCuts(c *fiber.Ctx) error {
	var cuts []models.SpecialCut
	if err := h.db.Order("sort_order asc").Find(&cuts).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": cuts})
}

type specialCutUpdateRequest struct {
	CutID string `json:"cut_id"`
	Data  struct {
		Label            *string            `json:"label"`
		ImageURL         *string            `json:"image_url"`
		ImageURLByLocale *map[string]string `json:"image_url_by_locale"`
		VideoURL         *string            `json:"video_url"`
		ClearVideoURL    bool               `json:"clear_video_url"`
		SortOrder        *int               `json:"sort_order"`
	} `json:"data"`
}

// UpdateSpecialCut patches a cut addressed by its stable cut id.
func (h *AdminContentHandler) UpdateSpecialCut(c *fiber.Ctx) error {
	var payload specialCutUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.CutID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "cut_id is required")
	}

	var cut models.SpecialCut
	if err := h.db.First(&cut, "cut_id = ?", payload.CutID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "special cut not found")
		}
		return err
	}

	updates := map[string]any{}
	d := payload.Data
	if d.Label != nil {
		if *d.Label == "" {
			return fiber.NewError(fiber.StatusBadRequest, "label must not be empty")
		}
		updates["label"] = *d.Label
	}
	if d.ImageURL != nil {
		updates["image_url"] = *d.ImageURL
	}
	if d.ImageURLByLocale != nil {
		encoded, err := json.Marshal(*d.ImageURLByLocale)
		if err != nil {
			return err
		}
		updates["image_url_by_locale"] = string(encoded)
	}
	if d.ClearVideoURL {
		updates["video_url"] = nil
	} else if d.VideoURL != nil {
		updates["video_url"] = *d.VideoURL
	}
	if d.SortOrder != nil {
		updates["sort_order"] = *d.SortOrder
	}

	if len(updates) > 0 {
		if err := h.db.Model(&cut).Updates(updates).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": cut})
}

// ListWeightOptions returns the global weight tier pool.
func (h *AdminContentHandler) ListWeightOptions(c *fiber.Ctx) error {
	var rows []models.WeightOption
	if err := h.db.Order("sort_order asc").Find(&rows).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": rows})
}

type weightOptionCreateRequest struct {
	Label     string   `json:"label"`
	Price     *float64 `json:"price"`
	SortOrder *int     `json:"sort_order"`
}

// CreateWeightOption adds a tier to the pool. Without an explicit sort order
// the tier is appended after the existing ones.
func (h *AdminContentHandler) CreateWeightOption(c *fiber.Ctx) error {
	var payload weightOptionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Label == "" || payload.Price == nil || *payload.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "label and a non-negative price are required")
	}

	row := models.WeightOption{Label: payload.Label, Price: *payload.Price}
	if payload.SortOrder != nil {
		row.SortOrder = *payload.SortOrder
	} else {
		var count int64
		if err := h.db.Model(&models.WeightOption{}).Count(&count).Error; err != nil {
			return err
		}
		row.SortOrder = int(count)
	}

	if err := h.db.Create(&row).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": row})
}

type weightOptionUpdateRequest struct {
	Label     *string  `json:"label"`
	Price     *float64 `json:"price"`
	SortOrder *int     `json:"sort_order"`
}

// UpdateWeightOption patches a tier by id.
func (h *AdminContentHandler) UpdateWeightOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var row models.WeightOption
	if err := h.db.First(&row, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "weight option not found")
		}
		return err
	}

	var payload weightOptionUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if payload.Label != nil {
		updates["label"] = *payload.Label
	}
	if payload.Price != nil {
		updates["price"] = *payload.Price
	}
	if payload.SortOrder != nil {
		updates["sort_order"] = *payload.SortOrder
	}
	if len(updates) > 0 {
		if err := h.db.Model(&row).Updates(updates).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

// DeleteWeightOption removes a tier and every product link that references it.
func (h *AdminContentHandler) DeleteWeightOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductWeight{}, "weight_option_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WeightOption{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProductWeights returns the tiers enabled for one product, in order.
func (h *AdminContentHandler) GetProductWeights(c *fiber.Ctx) error {
	productType := c.Params("productType")

	var rows []models.ProductWeight
	if err := h.db.Preload("WeightOption").
		Where("product_type = ?", productType).
		Order("sort_order asc").
		Find(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": productWeightViews(rows)})
}

type productWeightsPutRequest struct {
	WeightOptionIDs []string `json:"weight_option_ids"`
}

// ReplaceProductWeights replaces a product's enabled tier set wholesale. Sort
// order follows the submitted id order.
func (h *AdminContentHandler) ReplaceProductWeights(c *fiber.Ctx) error {
	productType := c.Params("productType")

	var payload productWeightsPutRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	ids := make([]uuid.UUID, 0, len(payload.WeightOptionIDs))
	for _, raw := range payload.WeightOptionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid weight option id")
		}
		ids = append(ids, id)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductWeight{}, "product_type = ?", productType).Error; err != nil {
			return err
		}
		for i, id := range ids {
			link := models.ProductWeight{
				ProductType:    productType,
				WeightOptionID: id,
				SortOrder:      i,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	var rows []models.ProductWeight
	if err := h.db.Preload("WeightOption").
		Where("product_type = ?", productType).
		Order("sort_order asc").
		Find(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": productWeightViews(rows)})
}

type productWeightView struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	SortOrder int     `json:"sort_order"`
}

func productWeightViews(rows []models.ProductWeight) []productWeightView {
	out := make([]productWeightView, 0, len(rows))
	for _, row := range rows {
		if row.WeightOption == nil {
			continue
		}
		out = append(out, productWeightView{
			ID:        row.WeightOptionID.String(),
			Label:     row.WeightOption.Label,
			Price:     row.WeightOption.Price,
			SortOrder: row.SortOrder,
		})
	}
	return out
}

// ListSettings returns every site setting as a key/value map.
func (h *AdminContentHandler) ListSettings(c *fiber.Ctx) error {
	var rows []models.SiteSetting
	if err := h.db.Order("key asc").Find(&rows).Error; err != nil {
		return err
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

type settingUpdateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateSetting upserts one setting. active_theme values are validated against
// the known theme set.
func (h *AdminContentHandler) UpdateSetting(c *fiber.Ctx) error {
	var payload settingUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key is required")
	}
	if payload.Key == content.SettingActiveTheme && !content.ValidTheme(payload.Value) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown theme")
	}

	var row models.SiteSetting
	err := h.db.First(&row, "key = ?", payload.Key).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		row = models.SiteSetting{Key: payload.Key, Value: payload.Value}
		if err := h.db.Create(&row).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := h.db.Model(&row).Update("value", payload.Value).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

// ListTranslations returns a locale's override rows, optionally filtered by a
// key substring.
func (h *AdminContentHandler) ListTranslations(c *fiber.Ctx) error {
	locale := c.Query("locale", "en")
	if !content.ValidLocale(locale) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown locale")
	}

	query := h.db.Where("locale = ?", locale).Order("key asc")
	if q := c.Query("q"); q != "" {
		query = query.Where("key LIKE ?", "%"+q+"%")
	}

	var rows []models.Translation
	if err := query.Find(&rows).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": rows})
}

type translationUpsertRequest struct {
	Locale string `json:"locale"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// UpsertTranslation creates or updates one override row.
func (h *AdminContentHandler) UpsertTranslation(c *fiber.Ctx) error {
	var payload translationUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !content.ValidLocale(payload.Locale) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown locale")
	}
	if payload.Key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key is required")
	}

	var row models.Translation
	err := h.db.First(&row, "locale = ? AND key = ?", payload.Locale, payload.Key).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		row = models.Translation{Locale: payload.Locale, Key: payload.Key, Value: payload.Value}
		if err := h.db.Create(&row).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := h.db.Model(&row).Update("value", payload.Value).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

// ListTemplatePresets returns the built-in order message templates the admin
// can copy into a theme's template setting.
func (h *AdminContentHandler) ListTemplatePresets(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": services.TemplatePresets()})
}
