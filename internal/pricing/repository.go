package pricing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for pricing-rule and promotion reads
type Repository interface {
	// GetRulesByClub returns the club's rules in declared priority order.
	// The caller relies on this ordering for the first-match tie-break.
	GetRulesByClub(ctx context.Context, clubID uuid.UUID) ([]Rule, error)

	// GetActivePromotionsByClub returns the club's active promotions.
	GetActivePromotionsByClub(ctx context.Context, clubID uuid.UUID) ([]Promotion, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new pricing repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRulesByClub(ctx context.Context, clubID uuid.UUID) ([]Rule, error) {
	var rules []Rule
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("priority asc, created_at asc").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *repository) GetActivePromotionsByClub(ctx context.Context, clubID uuid.UUID) ([]Promotion, error) {
	var promos []Promotion
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND is_active = ?", clubID, true).
		Order("created_at asc").
		Find(&promos).Error
	if err != nil {
		return nil, err
	}
	return promos, nil
}
