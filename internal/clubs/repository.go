package clubs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotMember = errors.New("user is not a member of this club")

// Repository interface for club reads
type Repository interface {
	GetClubByID(ctx context.Context, id uuid.UUID) (*Club, error)
	GetMemberRole(ctx context.Context, clubID, userID uuid.UUID) (Role, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new club repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetClubByID(ctx context.Context, id uuid.UUID) (*Club, error) {
	var club Club
	err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *repository) GetMemberRole(ctx context.Context, clubID, userID uuid.UUID) (Role, error) {
	var membership Membership
	err := r.db.WithContext(ctx).
		First(&membership, "club_id = ? AND user_id = ?", clubID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotMember
		}
		return "", err
	}
	return membership.Role, nil
}
