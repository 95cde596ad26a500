package pricing

import (
	"time"

	"github.com/google/uuid"
)

// Rule overrides a court's base rate for slots starting inside its
// time-of-day range. Rules are evaluated in ascending priority; the first
// match wins and replaces the computed base price outright.
type Rule struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClubID    uuid.UUID `gorm:"type:uuid;not null;index" json:"club_id"`
	Name      string    `gorm:"not null" json:"name"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"` // "HH:MM", inclusive
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`   // "HH:MM", exclusive
	Price     float64   `gorm:"not null" json:"price"`                      // fixed slot price, not a multiplier
	Priority  int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Promotion applies a percentage discount to slots starting inside its
// time-of-day range. At most one promotion is applied per slot, after any
// rule override.
type Promotion struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClubID          uuid.UUID `gorm:"type:uuid;not null;index" json:"club_id"`
	Name            string    `gorm:"not null" json:"name"`
	StartTime       string    `gorm:"type:varchar(5);not null" json:"start_time"` // "HH:MM", inclusive
	EndTime         string    `gorm:"type:varchar(5);not null" json:"end_time"`   // "HH:MM", exclusive
	DiscountPercent float64   `gorm:"not null" json:"discount_percent"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
