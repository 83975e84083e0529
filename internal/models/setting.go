package models

// SiteSetting is a free-form key/value row. Known keys include the WhatsApp
// link, delivery note, per-theme banner and hero texts, per-theme order
// message templates, the active theme id and the cities list (JSON array).
type SiteSetting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// Translation is a locale-scoped message override. Key uses dot-path notation
// ("nav.home"); rows are deep-merged over the static locale bundle at read
// time, overrides winning on leaf conflicts.
type Translation struct {
	BaseModel
	Locale string `gorm:"index:idx_locale_key,unique" json:"locale"`
	Key    string `gorm:"index:idx_locale_key,unique" json:"key"`
	Value  string `gorm:"type:text" json:"value"`
}
