package models

import "time"

// Animal statuses.
const (
	AnimalAvailable = "available"
	AnimalReserved  = "reserved"
	AnimalSold      = "sold"
)

// Animal is a physical head of livestock backing a product type.
type Animal struct {
	BaseModel
	TagNumber   string    `gorm:"uniqueIndex" json:"tag_number"`
	ProductType string    `gorm:"index" json:"product_type"`
	Breed       string    `json:"breed"`
	Weight      float64   `json:"weight"`
	Gender      string    `json:"gender"`
	Age         int       `json:"age"`
	PricePerKg  float64   `json:"price_per_kg"`
	ImageURL    string    `json:"image_url"`
	Status      string    `gorm:"index" json:"status"`
	ReadyDate   time.Time `json:"ready_date"`
}
