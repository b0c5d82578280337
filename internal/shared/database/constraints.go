package database

import (
	"gorm.io/gorm"
)

// constraintStatements are schema tweaks AutoMigrate does not express.
// Postgres has no IF NOT EXISTS form for ADD CONSTRAINT, so the unique
// constraint is guarded through pg_constraint instead.
var constraintStatements = []string{
	// One snapshot row per addon per booking
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT FROM pg_constraint WHERE conname = 'unique_addon_per_booking'
		) THEN
			ALTER TABLE booking_addons
			ADD CONSTRAINT unique_addon_per_booking
			UNIQUE (booking_id, addon_id);
		END IF;
	END $$;`,

	// Admin dashboard lists bookings by appointment slot
	`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_date_time
	ON bookings (booking_date DESC, booking_time DESC);`,

	// Status-guarded transitions filter on (id, status)
	`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_status
	ON bookings (status);`,

	// Quote inbox is read newest-first
	`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_quote_requests_created_at
	ON quote_requests (created_at DESC);`,
}

// MigrateConstraints adds constraints AutoMigrate does not express
func MigrateConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
