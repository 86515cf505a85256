package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/parking-control/internal/database"
	"github.com/dimitrije/parking-control/internal/models"
	"github.com/google/uuid"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// ParkingSpotInput returns an input whose unique fields do not collide with
// any other input from the same Fixtures.
func (f *Fixtures) ParkingSpotInput(opts ...ParkingSpotOption) models.ParkingSpotInput {
	f.counter++

	in := models.ParkingSpotInput{
		ParkingSpotNumber: fmt.Sprintf("S%d", f.counter),
		LicensePlateCar:   fmt.Sprintf("TST%04d", f.counter),
		BrandCar:          "Volkswagen",
		ModelCar:          "Gol",
		ColorCar:          "Silver",
		ResponsibleName:   fmt.Sprintf("Resident %d", f.counter),
		Apartment:         fmt.Sprintf("%d", 100+f.counter),
		Block:             "A",
	}

	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// CreateParkingSpot inserts a parking spot directly, bypassing the service checks
func (f *Fixtures) CreateParkingSpot(t *testing.T, opts ...ParkingSpotOption) *models.ParkingSpot {
	t.Helper()
	in := f.ParkingSpotInput(opts...)

	spot := &models.ParkingSpot{}
	err := f.db.Pool.QueryRow(context.Background(), `
		INSERT INTO parking_spots (id, parking_spot_number, license_plate_car, brand_car, model_car,
			color_car, registration_date, responsible_name, apartment, block)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, parking_spot_number, license_plate_car, brand_car, model_car,
			color_car, registration_date, responsible_name, apartment, block
	`, uuid.New(), in.ParkingSpotNumber, in.LicensePlateCar, in.BrandCar, in.ModelCar,
		in.ColorCar, time.Now().UTC(), in.ResponsibleName, in.Apartment, in.Block,
	).Scan(
		&spot.ID, &spot.ParkingSpotNumber, &spot.LicensePlateCar, &spot.BrandCar, &spot.ModelCar,
		&spot.ColorCar, &spot.RegistrationDate, &spot.ResponsibleName, &spot.Apartment, &spot.Block,
	)
	if err != nil {
		t.Fatalf("failed to create parking spot: %v", err)
	}

	return spot
}

// ParkingSpotOption configures a test parking spot
type ParkingSpotOption func(*models.ParkingSpotInput)

// WithLicensePlate sets the car's license plate
func WithLicensePlate(plate string) ParkingSpotOption {
	return func(in *models.ParkingSpotInput) {
		in.LicensePlateCar = plate
	}
}

// WithApartment sets the apartment and block
func WithApartment(apartment, block string) ParkingSpotOption {
	return func(in *models.ParkingSpotInput) {
		in.Apartment = apartment
		in.Block = block
	}
}

// WithSpotNumber sets the parking spot number
func WithSpotNumber(number string) ParkingSpotOption {
	return func(in *models.ParkingSpotInput) {
		in.ParkingSpotNumber = number
	}
}
