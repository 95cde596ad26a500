package courts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for court catalog reads
type Repository interface {
	GetCourtByID(ctx context.Context, id uuid.UUID) (*Court, error)
	GetActiveCourtsByClub(ctx context.Context, clubID uuid.UUID, courtIDs []uuid.UUID) ([]Court, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new court repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCourtByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).First(&court, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &court, nil
}

// GetActiveCourtsByClub returns the club's active courts ordered by name.
// An empty courtIDs selection means every court.
func (r *repository) GetActiveCourtsByClub(ctx context.Context, clubID uuid.UUID, courtIDs []uuid.UUID) ([]Court, error) {
	var result []Court

	query := r.db.WithContext(ctx).
		Where("club_id = ? AND is_active = ?", clubID, true)
	if len(courtIDs) > 0 {
		query = query.Where("id IN ?", courtIDs)
	}

	if err := query.Order("name asc").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
