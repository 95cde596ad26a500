package blocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for blocked-interval reads
type Repository interface {
	// GetByClubAndDate returns blocks touching the given calendar day.
	GetByClubAndDate(ctx context.Context, clubID uuid.UUID, date string) ([]BlockedInterval, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new blocked-interval repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByClubAndDate(ctx context.Context, clubID uuid.UUID, date string) ([]BlockedInterval, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	dayStart := day.UTC()
	dayEnd := dayStart.Add(24 * time.Hour)

	var result []BlockedInterval
	err = r.db.WithContext(ctx).
		Where("club_id = ? AND starts_at < ? AND ends_at > ?", clubID, dayEnd, dayStart).
		Order("starts_at asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
