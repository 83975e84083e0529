package content

// ThemeIDs are the seasonal site presets.
var ThemeIDs = []string{"default", "ramadan", "eid"}

// Site setting keys read by the resolver.
const (
	SettingActiveTheme  = "active_theme"
	SettingWhatsAppLink = "whatsapp_link"
	SettingDeliveryNote = "delivery_transport_note"
	SettingCities       = "cities"
)

var orderTemplateKeys = map[string]string{
	"default": "order_message_template",
	"ramadan": "order_message_template_ramadan",
	"eid":     "order_message_template_eid",
}

var themeBannerKeys = map[string]string{
	"default": "theme_banner_text_default",
	"ramadan": "theme_banner_text_ramadan",
	"eid":     "theme_banner_text_eid",
}

var themeHeroHeadingKeys = map[string]string{
	"default": "theme_hero_heading_default",
	"ramadan": "theme_hero_heading_ramadan",
	"eid":     "theme_hero_heading_eid",
}

var themeHeroSubtitleKeys = map[string]string{
	"default": "theme_hero_subtitle_default",
	"ramadan": "theme_hero_subtitle_ramadan",
	"eid":     "theme_hero_subtitle_eid",
}

// ThemeData bundles the site-wide presentation values for the active theme.
type ThemeData struct {
	ThemeID      string `json:"theme_id"`
	BannerText   string `json:"banner_text"`
	HeroHeading  string `json:"hero_heading"`
	HeroSubtitle string `json:"hero_subtitle"`
}

// ValidTheme reports whether id names a known theme.
func ValidTheme(id string) bool {
	for _, t := range ThemeIDs {
		if t == id {
			return true
		}
	}
	return false
}
