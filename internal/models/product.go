package models

import "github.com/google/uuid"

// Product is one of the four fixed catalog entries (half/whole sheep/goat).
// ImageURLByLocale stores a JSON object keyed by "occasion:locale", "occasion"
// or "locale"; resolution order lives in the content package.
type Product struct {
	BaseModel
	ProductType      string  `gorm:"uniqueIndex" json:"product_type"`
	Label            string  `json:"label"`
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
	ImageURL         string  `json:"image_url"`
	ImageURLByLocale string  `json:"image_url_by_locale"`
	SortOrder        int     `json:"sort_order"`
}

// SpecialCut is a named butchering style offered in the wizard.
type SpecialCut struct {
	BaseModel
	CutID            string  `gorm:"uniqueIndex" json:"cut_id"`
	Label            string  `json:"label"`
	ImageURL         string  `json:"image_url"`
	ImageURLByLocale string  `json:"image_url_by_locale"`
	VideoURL         *string `json:"video_url"`
	SortOrder        int     `json:"sort_order"`
}

// WeightOption is a global weight/price tier customers may pick instead of a
// product's default price range.
type WeightOption struct {
	BaseModel
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	SortOrder int     `json:"sort_order"`
}

// ProductWeight links a product type to an enabled weight option. Rows are
// replaced wholesale when the admin saves a product's weight set.
type ProductWeight struct {
	BaseModel
	ProductType    string        `gorm:"index:idx_product_weight,unique" json:"product_type"`
	WeightOptionID uuid.UUID     `gorm:"type:uuid;index:idx_product_weight,unique" json:"weight_option_id"`
	WeightOption   *WeightOption `json:"weight_option,omitempty"`
	SortOrder      int           `json:"sort_order"`
}
