package reservations

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a booked court slot from the reservation ledger. The write
// path (creation, payment, cancellation) lives in the booking subsystem; the
// availability engine only reads these to detect conflicts.
type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClubID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reservation_club_date" json:"club_id"`
	CourtID    uuid.UUID `gorm:"type:uuid;not null;index" json:"court_id"`
	Date       string    `gorm:"type:varchar(10);not null;index:idx_reservation_club_date" json:"date"` // "YYYY-MM-DD"
	StartTime  string    `gorm:"type:varchar(5);not null" json:"start_time"`                            // "HH:MM"
	EndTime    string    `gorm:"type:varchar(5);not null" json:"end_time"`                              // "HH:MM"
	Status     Status    `gorm:"type:varchar(16);not null;default:'CONFIRMED'" json:"status"`
	ClientName string    `json:"client_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
