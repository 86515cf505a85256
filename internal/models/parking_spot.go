package models

import (
	"time"

	"github.com/google/uuid"
)

type ParkingSpot struct {
	ID                uuid.UUID `json:"id"`
	ParkingSpotNumber string    `json:"parkingSpotNumber"`
	LicensePlateCar   string    `json:"licensePlateCar"`
	BrandCar          string    `json:"brandCar"`
	ModelCar          string    `json:"modelCar"`
	ColorCar          string    `json:"colorCar"`
	RegistrationDate  time.Time `json:"registrationDate"`
	ResponsibleName   string    `json:"responsibleName"`
	Apartment         string    `json:"apartment"`
	Block             string    `json:"block"`
}

// ParkingSpotInput carries the caller-supplied fields of a parking spot. It is
// the full replacement set on update.
type ParkingSpotInput struct {
	ParkingSpotNumber string
	LicensePlateCar   string
	BrandCar          string
	ModelCar          string
	ColorCar          string
	ResponsibleName   string
	Apartment         string
	Block             string
}

// Column limits, shared by request validation and the schema.
const (
	MaxParkingSpotNumberLen = 10
	MaxLicensePlateCarLen   = 7
	MaxBrandCarLen          = 70
	MaxModelCarLen          = 70
	MaxColorCarLen          = 70
	MaxResponsibleNameLen   = 130
	MaxApartmentLen         = 30
	MaxBlockLen             = 30
)
