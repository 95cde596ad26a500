package reservations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for reservation ledger reads
type Repository interface {
	// GetActiveByClubAndDate returns the club's non-cancelled reservations
	// for a date, ordered by court and start time.
	GetActiveByClubAndDate(ctx context.Context, clubID uuid.UUID, date string) ([]Reservation, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new reservation repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActiveByClubAndDate(ctx context.Context, clubID uuid.UUID, date string) ([]Reservation, error) {
	var result []Reservation
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND date = ? AND status <> ?", clubID, date, StatusCancelled).
		Order("court_id asc, start_time asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
