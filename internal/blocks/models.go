package blocks

import (
	"time"

	"github.com/google/uuid"
)

// BlockedInterval is a maintenance or manual block on a court. It makes every
// overlapping slot unavailable, like a reservation, but is reported with a
// reason instead of a client identity.
type BlockedInterval struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClubID    uuid.UUID `gorm:"type:uuid;not null;index" json:"club_id"`
	CourtID   uuid.UUID `gorm:"type:uuid;not null;index" json:"court_id"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
