package content

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/example/kordoba/internal/models"
)

// Resolver reads storefront content from the database, degrading to static
// defaults whenever the database is empty or unreachable. Callers never see
// read errors, only default data; failures are logged server-side.
type Resolver struct {
	db *gorm.DB
}

// NewResolver constructs a Resolver. A nil db is allowed and behaves as a
// permanently unreachable database.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Products returns the catalog with images resolved for the requested locale
// and occasion, in sort order.
func (r *Resolver) Products(locale, occasion string) []ProductConfig {
	if r.db == nil {
		return productDefaults
	}

	var rows []models.Product
	if err := r.db.Order("sort_order asc").Find(&rows).Error; err != nil {
		log.Printf("[content] products: falling back to static defaults: %v", err)
		return productDefaults
	}
	if len(rows) == 0 {
		return productDefaults
	}

	out := make([]ProductConfig, 0, len(rows))
	for _, p := range rows {
		out = append(out, ProductConfig{
			ProductType: p.ProductType,
			Label:       p.Label,
			MinPrice:    p.MinPrice,
			MaxPrice:    p.MaxPrice,
			ImageURL:    ResolveImageURL(p.ImageURL, p.ImageURLByLocale, locale, occasion),
		})
	}
	return out
}

// ProductConfig returns one catalog entry by product type, or false.
func (r *Resolver) ProductConfig(productType, locale, occasion string) (ProductConfig, bool) {
	for _, p := range r.Products(locale, occasion) {
		if p.ProductType == productType {
			return p, true
		}
	}
	return ProductConfig{}, false
}

// ProductWeights returns the weight tiers enabled for a product, in the
// product's configured order. Empty when none are configured or the database
// is unavailable.
func (r *Resolver) ProductWeights(productType string) []WeightOption {
	if r.db == nil {
		return nil
	}

	var rows []models.ProductWeight
	if err := r.db.Preload("WeightOption").
		Where("product_type = ?", productType).
		Order("sort_order asc").
		Find(&rows).Error; err != nil {
		log.Printf("[content] product weights: returning empty set: %v", err)
		return nil
	}

	out := make([]WeightOption, 0, len(rows))
	for _, row := range rows {
		if row.WeightOption == nil {
			continue
		}
		out = append(out, WeightOption{
			ID:        row.WeightOptionID.String(),
			Label:     row.WeightOption.Label,
			Price:     row.WeightOption.Price,
			SortOrder: row.SortOrder,
		})
	}
	return out
}

// SpecialCuts returns the butchering styles with images resolved for the
// requested locale and occasion, in sort order.
func (r *Resolver) SpecialCuts(locale, occasion string) []SpecialCutOption {
	if r.db == nil {
		return specialCutsFallback
	}

	var rows []models.SpecialCut
	if err := r.db.Order("sort_order asc").Find(&rows).Error; err != nil {
		log.Printf("[content] special cuts: falling back to static defaults: %v", err)
		return specialCutsFallback
	}
	if len(rows) == 0 {
		return specialCutsFallback
	}

	out := make([]SpecialCutOption, 0, len(rows))
	for _, cut := range rows {
		opt := SpecialCutOption{
			ID:       cut.CutID,
			Label:    cut.Label,
			ImageURL: ResolveImageURL(cut.ImageURL, cut.ImageURLByLocale, locale, occasion),
		}
		if cut.VideoURL != nil {
			opt.VideoURL = *cut.VideoURL
		}
		out = append(out, opt)
	}
	return out
}

// Setting returns a site setting value, or "" when the key is missing or the
// database is unavailable.
func (r *Resolver) Setting(key string) string {
	if r.db == nil {
		return ""
	}

	var row models.SiteSetting
	if err := r.db.First(&row, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("[content] setting %q: returning empty: %v", key, err)
		}
		return ""
	}
	return row.Value
}

// Settings returns every site setting as a key/value map.
func (r *Resolver) Settings() map[string]string {
	out := map[string]string{}
	if r.db == nil {
		return out
	}

	var rows []models.SiteSetting
	if err := r.db.Order("key asc").Find(&rows).Error; err != nil {
		log.Printf("[content] settings: returning empty map: %v", err)
		return out
	}
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out
}

// Cities returns the configured city list, or the static default when the
// setting is missing or unparseable.
func (r *Resolver) Cities() []string {
	raw := r.Setting(SettingCities)
	if raw == "" {
		return citiesFallback
	}

	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return citiesFallback
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ActiveThemeID returns the configured theme id, defaulting to "default" when
// unset or unknown.
func (r *Resolver) ActiveThemeID() string {
	id := r.Setting(SettingActiveTheme)
	if ValidTheme(id) {
		return id
	}
	return "default"
}

// ActiveTheme returns the banner and hero values for the active theme.
func (r *Resolver) ActiveTheme() ThemeData {
	id := r.ActiveThemeID()
	return ThemeData{
		ThemeID:      id,
		BannerText:   r.Setting(themeBannerKeys[id]),
		HeroHeading:  r.Setting(themeHeroHeadingKeys[id]),
		HeroSubtitle: r.Setting(themeHeroSubtitleKeys[id]),
	}
}

// ActiveOrderMessageTemplate returns the active theme id and the stored order
// message template for it. The template is "" when the admin has not
// customized it; callers fall back to a built-in preset.
func (r *Resolver) ActiveOrderMessageTemplate() (theme, template string) {
	theme = r.ActiveThemeID()
	return theme, r.Setting(orderTemplateKeys[theme])
}

// MessagesForLocale returns the message bundle for a locale: the static bundle
// with database overrides deep-merged on top.
func (r *Resolver) MessagesForLocale(locale string) map[string]any {
	base := StaticMessages(locale)
	if r.db == nil {
		return base
	}

	var rows []models.Translation
	if err := r.db.Where("locale = ?", locale).Find(&rows).Error; err != nil {
		log.Printf("[content] messages %q: serving static bundle: %v", locale, err)
		return base
	}
	if len(rows) == 0 {
		return base
	}

	flat := make(map[string]string, len(rows))
	for _, row := range rows {
		flat[row.Key] = row.Value
	}
	return MergeMessages(base, NestKeys(flat))
}
