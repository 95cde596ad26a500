package database

import (
	"courtly/internal/blocks"
	"courtly/internal/clubs"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/reservations"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clubs.Club{},
		&clubs.Membership{},
		&courts.Court{},
		&reservations.Reservation{},
		&pricing.Rule{},
		&pricing.Promotion{},
		&blocks.BlockedInterval{},
	)
}
