package handlers

import (
	"errors"

	"github.com/dimitrije/parking-control/internal/services"
	"github.com/dimitrije/parking-control/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog/log"
)

const (
	msgGetNotFound    = "Parking Spot not Found."
	msgNotFound       = "Parking spot not found!"
	msgDeleted        = "Parking spot deleted successfully"
	msgInvalidID      = "invalid parking spot id"
	msgInvalidBody    = "invalid request body"
	msgValidateFailed = "validation failed"
)

type ParkingSpotHandler struct {
	parkingSpotService ParkingSpotServiceInterface
}

func NewParkingSpotHandler(parkingSpotService ParkingSpotServiceInterface) *ParkingSpotHandler {
	return &ParkingSpotHandler{parkingSpotService: parkingSpotService}
}

func (h *ParkingSpotHandler) Create(c *drift.Context) {
	req, ok := bindParkingSpotRequest(c)
	if !ok {
		return
	}

	spot, err := h.parkingSpotService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		if writeConflict(c, err) {
			return
		}
		log.Error().Err(err).Msg("failed to create parking spot")
		writeError(c, 500, "failed to create parking spot")
		return
	}

	_ = c.JSON(201, dto.NewParkingSpotResponse(spot))
}

func (h *ParkingSpotHandler) List(c *drift.Context) {
	spots, err := h.parkingSpotService.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list parking spots")
		writeError(c, 500, "failed to get parking spots")
		return
	}

	_ = c.JSON(200, dto.NewParkingSpotListResponse(spots))
}

func (h *ParkingSpotHandler) Get(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, 400, msgInvalidID)
		return
	}

	spot, err := h.parkingSpotService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrParkingSpotNotFound) {
			writeError(c, 404, msgGetNotFound)
			return
		}
		log.Error().Err(err).Str("id", id.String()).Msg("failed to get parking spot")
		writeError(c, 500, "failed to get parking spot")
		return
	}

	_ = c.JSON(200, dto.NewParkingSpotResponse(spot))
}

func (h *ParkingSpotHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, 400, msgInvalidID)
		return
	}

	if err := h.parkingSpotService.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrParkingSpotNotFound) {
			writeError(c, 404, msgNotFound)
			return
		}
		log.Error().Err(err).Str("id", id.String()).Msg("failed to delete parking spot")
		writeError(c, 500, "failed to delete parking spot")
		return
	}

	_ = c.JSON(200, dto.MessageResponse{Message: msgDeleted})
}

func (h *ParkingSpotHandler) Update(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, 400, msgInvalidID)
		return
	}

	req, ok := bindParkingSpotRequest(c)
	if !ok {
		return
	}

	spot, err := h.parkingSpotService.UpdateByID(c.Request.Context(), id, req.ToInput())
	if err != nil {
		if errors.Is(err, services.ErrParkingSpotNotFound) {
			writeError(c, 404, msgNotFound)
			return
		}
		if writeConflict(c, err) {
			return
		}
		log.Error().Err(err).Str("id", id.String()).Msg("failed to update parking spot")
		writeError(c, 500, "failed to update parking spot")
		return
	}

	_ = c.JSON(200, dto.NewParkingSpotResponse(spot))
}

// bindParkingSpotRequest decodes and validates the body, writing a 400 and
// returning false when either step fails.
func bindParkingSpotRequest(c *drift.Context) (dto.ParkingSpotRequest, bool) {
	var req dto.ParkingSpotRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, 400, msgInvalidBody)
		return req, false
	}

	if err := req.Validate(); err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			_ = c.JSON(400, dto.ValidationErrorResponse{
				Error:  msgValidateFailed,
				Fields: verr.Fields,
			})
			return req, false
		}
		writeError(c, 400, err.Error())
		return req, false
	}

	return req, true
}

func writeConflict(c *drift.Context, err error) bool {
	var conflict *services.ConflictError
	if !errors.As(err, &conflict) {
		return false
	}
	writeError(c, 409, conflict.Error())
	return true
}

// writeError is the single error body shape: {"error": "<message>"}.
func writeError(c *drift.Context, status int, message string) {
	_ = c.JSON(status, dto.ErrorResponse{Error: message})
}
