package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/dimitrije/parking-control/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ParkingSpotRequest {
	return ParkingSpotRequest{
		ParkingSpotNumber: "12",
		LicensePlateCar:   "ABC123",
		BrandCar:          "Toyota",
		ModelCar:          "Corolla",
		ColorCar:          "Blue",
		ResponsibleName:   "Ana Souza",
		Apartment:         "101",
		Block:             "A",
	}
}

func TestParkingSpotRequest_Validate_OK(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestParkingSpotRequest_Validate_BlankFields(t *testing.T) {
	req := validRequest()
	req.LicensePlateCar = "   "
	req.Block = ""

	err := req.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "licensePlateCar", verr.Fields[0].Field)
	assert.Equal(t, "must not be blank", verr.Fields[0].Message)
	assert.Equal(t, "block", verr.Fields[1].Field)
}

func TestParkingSpotRequest_Validate_TooLong(t *testing.T) {
	req := validRequest()
	req.LicensePlateCar = "ABCD1234"
	req.ResponsibleName = strings.Repeat("x", 131)

	err := req.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "licensePlateCar", verr.Fields[0].Field)
	assert.Equal(t, "must be at most 7 characters", verr.Fields[0].Message)
	assert.Equal(t, "responsibleName", verr.Fields[1].Field)
	assert.Contains(t, err.Error(), "licensePlateCar: must be at most 7 characters")
}

func TestParkingSpotRequest_Validate_LengthCountsRunes(t *testing.T) {
	req := validRequest()
	req.LicensePlateCar = "ÁÉÍÓÚ12"

	assert.NoError(t, req.Validate())
}

func TestParkingSpotRequest_ToInput_Trims(t *testing.T) {
	req := validRequest()
	req.Apartment = " 101 "
	req.LicensePlateCar = "ABC123\n"

	in := req.ToInput()

	assert.Equal(t, "101", in.Apartment)
	assert.Equal(t, "ABC123", in.LicensePlateCar)
	assert.Equal(t, "Ana Souza", in.ResponsibleName)
}

func TestNewParkingSpotResponse(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	registered := time.Date(2024, 5, 1, 9, 0, 0, 0, loc)
	spot := &models.ParkingSpot{
		ID:                uuid.New(),
		ParkingSpotNumber: "12",
		LicensePlateCar:   "ABC123",
		BrandCar:          "Toyota",
		ModelCar:          "Corolla",
		ColorCar:          "Blue",
		RegistrationDate:  registered,
		ResponsibleName:   "Ana Souza",
		Apartment:         "101",
		Block:             "A",
	}

	resp := NewParkingSpotResponse(spot)

	assert.Equal(t, spot.ID, resp.ID)
	assert.Equal(t, "ABC123", resp.LicensePlateCar)
	assert.Equal(t, time.UTC, resp.RegistrationDate.Location())
	assert.True(t, registered.Equal(resp.RegistrationDate))
}

func TestNewParkingSpotListResponse_Empty(t *testing.T) {
	resp := NewParkingSpotListResponse(nil)

	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
