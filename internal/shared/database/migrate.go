package database

import (
	"github.com/JadenRazo/showersautodetailing/internal/auth"
	"github.com/JadenRazo/showersautodetailing/internal/bookings"
	"github.com/JadenRazo/showersautodetailing/internal/catalog"
	"github.com/JadenRazo/showersautodetailing/internal/quotes"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Service{},
		&catalog.Package{},
		&catalog.Addon{},
		&catalog.ServiceIncludedAddon{},
		&catalog.ServiceAvailableAddon{},
		&catalog.Setting{},
		&bookings.Booking{},
		&bookings.BookingAddon{},
		&quotes.QuoteRequest{},
		&auth.AdminUser{},
		&auth.RefreshToken{},
	)
}
