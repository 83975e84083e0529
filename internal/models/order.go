package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is created by the optional card checkout path. The WhatsApp handoff
// never persists orders server-side.
type Order struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User              *User     `json:"user,omitempty"`
	AnimalID          uuid.UUID `gorm:"type:uuid;index" json:"animal_id"`
	Animal            *Animal   `json:"animal,omitempty"`
	Purpose           string    `json:"purpose"`
	City              string    `json:"city"`
	SlaughterDate     time.Time `json:"slaughter_date"`
	DistributionType  string    `json:"distribution_type"`
	TotalPrice        float64   `json:"total_price"`
	PaymentStatus     string    `gorm:"index" json:"payment_status"`
	OrderStatus       string    `json:"order_status"`
	NameTag           string    `json:"name_tag"`
	VideoProofOpt     bool      `json:"video_proof_opt"`
	WeightSelection   string    `json:"weight_selection"`
	SpecialCut        string    `json:"special_cut"`
	IncludeHead       bool      `json:"include_head"`
	IncludeStomach    bool      `json:"include_stomach"`
	IncludeIntestines bool      `json:"include_intestines"`
	Note              string    `json:"note"`
	StripePaymentID   string    `json:"stripe_payment_id"`
}
