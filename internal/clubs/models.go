package clubs

import (
	"time"

	"github.com/google/uuid"
)

// Club is the owning tenant for courts, reservations and pricing. Clubs are
// managed by the facility-management subsystem; this service only reads them.
type Club struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Currency  string    `gorm:"not null;default:'EUR'" json:"currency"` // ISO 4217, fixed per club
	Timezone  string    `gorm:"not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership links a user to a club with a role
type Membership struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClubID    uuid.UUID `gorm:"type:uuid;not null;index:idx_membership_club_user,unique" json:"club_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_membership_club_user,unique" json:"user_id"`
	Role      Role      `gorm:"type:varchar(16);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// IsValid checks if the role is a known club role
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// CanViewAvailability reports whether the role may read the aggregated
// availability view. All staff-level roles may.
func (r Role) CanViewAvailability() bool {
	return r.IsValid()
}
