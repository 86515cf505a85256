package testutil

import (
	"context"

	"github.com/dimitrije/parking-control/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockParkingSpotService mocks the ParkingSpotService
type MockParkingSpotService struct {
	mock.Mock
}

func (m *MockParkingSpotService) Create(ctx context.Context, in models.ParkingSpotInput) (*models.ParkingSpot, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkingSpot), args.Error(1)
}

func (m *MockParkingSpotService) List(ctx context.Context) ([]models.ParkingSpot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ParkingSpot), args.Error(1)
}

func (m *MockParkingSpotService) GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkingSpot), args.Error(1)
}

func (m *MockParkingSpotService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParkingSpotService) UpdateByID(ctx context.Context, id uuid.UUID, in models.ParkingSpotInput) (*models.ParkingSpot, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkingSpot), args.Error(1)
}

// MockPinger mocks the database health check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
