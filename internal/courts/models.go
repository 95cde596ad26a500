package courts

import (
	"time"

	"github.com/google/uuid"
)

// Court is a bookable playing surface owned by a club. Courts are created and
// updated by the facility-management subsystem; this service reads them only.
type Court struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClubID         uuid.UUID `gorm:"type:uuid;not null;index" json:"club_id"`
	Name           string    `gorm:"not null" json:"name"`
	SurfaceType    string    `gorm:"not null" json:"surface_type"` // CLAY, HARD, GRASS, CARPET
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	BaseHourlyRate float64   `gorm:"not null" json:"base_hourly_rate"`
	OpenTime       string    `gorm:"type:varchar(5);not null;default:'08:00'" json:"open_time"`  // "HH:MM"
	CloseTime      string    `gorm:"type:varchar(5);not null;default:'22:00'" json:"close_time"` // "HH:MM"
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
