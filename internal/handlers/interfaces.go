package handlers

import (
	"context"

	"github.com/dimitrije/parking-control/internal/models"
	"github.com/dimitrije/parking-control/internal/sse"
	"github.com/google/uuid"
)

// ParkingSpotServiceInterface defines the methods used by handlers from ParkingSpotService
type ParkingSpotServiceInterface interface {
	Create(ctx context.Context, in models.ParkingSpotInput) (*models.ParkingSpot, error)
	List(ctx context.Context) ([]models.ParkingSpot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	UpdateByID(ctx context.Context, id uuid.UUID, in models.ParkingSpotInput) (*models.ParkingSpot, error)
}

// PingerInterface is satisfied by *database.DB
type PingerInterface interface {
	Ping(ctx context.Context) error
}

// EventHubInterface is satisfied by *sse.Hub
type EventHubInterface interface {
	Register(client *sse.Client) bool
	Unregister(client *sse.Client)
}
