package database

import (
	"haven/internal/booking"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&booking.Reservation{},
		&booking.Payment{},
	)
}
