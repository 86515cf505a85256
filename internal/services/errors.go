package services

import "errors"

var ErrParkingSpotNotFound = errors.New("parking spot not found")

type ConflictReason string

const (
	ConflictLicensePlate   ConflictReason = "license_plate"
	ConflictApartmentBlock ConflictReason = "apartment_block"
	ConflictSpotNumber     ConflictReason = "spot_number"
)

// ConflictError rejects a write that would break one of the uniqueness
// invariants. errors.Is matches a sentinel with the same reason, and
// ErrConflict matches every reason.
type ConflictError struct {
	Reason ConflictReason
}

func (e *ConflictError) Error() string {
	switch e.Reason {
	case ConflictLicensePlate:
		return "Conflict: License Plate Car is already in use"
	case ConflictApartmentBlock:
		return "Conflict: parking spot already registered for this apartment/block"
	case ConflictSpotNumber:
		return "Conflict: Parking Spot is already in use!"
	default:
		return "Conflict"
	}
}

func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

var (
	ErrConflict               = &ConflictError{}
	ErrLicensePlateInUse      = &ConflictError{Reason: ConflictLicensePlate}
	ErrApartmentBlockInUse    = &ConflictError{Reason: ConflictApartmentBlock}
	ErrParkingSpotNumberInUse = &ConflictError{Reason: ConflictSpotNumber}
)
