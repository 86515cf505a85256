package database

import (
	"context"
	"fmt"
)

// Uniqueness of plate, apartment/block and spot number is enforced by the
// service under an advisory lock, not by constraints, so that updates may
// keep their last-write-wins behavior. The indexes only back the lookups.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS parking_spots (
		id UUID PRIMARY KEY,
		parking_spot_number VARCHAR(10) NOT NULL,
		license_plate_car VARCHAR(7) NOT NULL,
		brand_car VARCHAR(70) NOT NULL,
		model_car VARCHAR(70) NOT NULL,
		color_car VARCHAR(70) NOT NULL,
		registration_date TIMESTAMP WITH TIME ZONE NOT NULL,
		responsible_name VARCHAR(130) NOT NULL,
		apartment VARCHAR(30) NOT NULL,
		block VARCHAR(30) NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_parking_spots_license_plate_car ON parking_spots(license_plate_car)`,
	`CREATE INDEX IF NOT EXISTS idx_parking_spots_apartment_block ON parking_spots(apartment, block)`,
	`CREATE INDEX IF NOT EXISTS idx_parking_spots_parking_spot_number ON parking_spots(parking_spot_number)`,
	`CREATE INDEX IF NOT EXISTS idx_parking_spots_registration_date ON parking_spots(registration_date)`,
}

// MigrationCount reports how many statements Migrate runs.
func MigrationCount() int {
	return len(migrations)
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
