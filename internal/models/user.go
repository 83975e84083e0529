package models

// User is a checkout customer, upserted by email when an order is placed.
type User struct {
	BaseModel
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Language string `json:"language"`
}
