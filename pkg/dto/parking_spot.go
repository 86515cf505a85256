package dto

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dimitrije/parking-control/internal/models"
	"github.com/google/uuid"
)

type ParkingSpotRequest struct {
	ParkingSpotNumber string `json:"parkingSpotNumber"`
	LicensePlateCar   string `json:"licensePlateCar"`
	BrandCar          string `json:"brandCar"`
	ModelCar          string `json:"modelCar"`
	ColorCar          string `json:"colorCar"`
	ResponsibleName   string `json:"responsibleName"`
	Apartment         string `json:"apartment"`
	Block             string `json:"block"`
}

type ParkingSpotResponse struct {
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

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationErrorResponse is the 400 body for a rejected request.
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Validate checks that every field is present and fits its column. Fields are
// reported in declaration order. It returns nil or a *ValidationError.
func (r ParkingSpotRequest) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"parkingSpotNumber", r.ParkingSpotNumber, models.MaxParkingSpotNumberLen},
		{"licensePlateCar", r.LicensePlateCar, models.MaxLicensePlateCarLen},
		{"brandCar", r.BrandCar, models.MaxBrandCarLen},
		{"modelCar", r.ModelCar, models.MaxModelCarLen},
		{"colorCar", r.ColorCar, models.MaxColorCarLen},
		{"responsibleName", r.ResponsibleName, models.MaxResponsibleNameLen},
		{"apartment", r.Apartment, models.MaxApartmentLen},
		{"block", r.Block, models.MaxBlockLen},
	}

	var fields []FieldError
	for _, c := range checks {
		v := strings.TrimSpace(c.value)
		switch {
		case v == "":
			fields = append(fields, FieldError{Field: c.field, Message: "must not be blank"})
		case utf8.RuneCountInString(v) > c.max:
			fields = append(fields, FieldError{Field: c.field, Message: fmt.Sprintf("must be at most %d characters", c.max)})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToInput copies the request into the service input, trimming surrounding
// whitespace from every field.
func (r ParkingSpotRequest) ToInput() models.ParkingSpotInput {
	return models.ParkingSpotInput{
		ParkingSpotNumber: strings.TrimSpace(r.ParkingSpotNumber),
		LicensePlateCar:   strings.TrimSpace(r.LicensePlateCar),
		BrandCar:          strings.TrimSpace(r.BrandCar),
		ModelCar:          strings.TrimSpace(r.ModelCar),
		ColorCar:          strings.TrimSpace(r.ColorCar),
		ResponsibleName:   strings.TrimSpace(r.ResponsibleName),
		Apartment:         strings.TrimSpace(r.Apartment),
		Block:             strings.TrimSpace(r.Block),
	}
}

func NewParkingSpotResponse(spot *models.ParkingSpot) ParkingSpotResponse {
	return ParkingSpotResponse{
		ID:                spot.ID,
		ParkingSpotNumber: spot.ParkingSpotNumber,
		LicensePlateCar:   spot.LicensePlateCar,
		BrandCar:          spot.BrandCar,
		ModelCar:          spot.ModelCar,
		ColorCar:          spot.ColorCar,
		RegistrationDate:  spot.RegistrationDate.UTC(),
		ResponsibleName:   spot.ResponsibleName,
		Apartment:         spot.Apartment,
		Block:             spot.Block,
	}
}

func NewParkingSpotListResponse(spots []models.ParkingSpot) []ParkingSpotResponse {
	response := make([]ParkingSpotResponse, len(spots))
	for i := range spots {
		response[i] = NewParkingSpotResponse(&spots[i])
	}
	return response
}
