package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/parking-control/internal/database"
	"github.com/dimitrije/parking-control/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// parkingSpotLockKey is the advisory lock serializing uniqueness checks with
// the write that follows them.
const parkingSpotLockKey int64 = 0x70617263

const parkingSpotColumns = `id, parking_spot_number, license_plate_car, brand_car, model_car,
	color_car, registration_date, responsible_name, apartment, block`

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ChangeNotifier is told about every committed write.
type ChangeNotifier interface {
	ParkingSpotCreated(spot models.ParkingSpot)
	ParkingSpotUpdated(spot models.ParkingSpot)
	ParkingSpotDeleted(id uuid.UUID)
}

type noopNotifier struct{}

func (noopNotifier) ParkingSpotCreated(models.ParkingSpot) {}
func (noopNotifier) ParkingSpotUpdated(models.ParkingSpot) {}
func (noopNotifier) ParkingSpotDeleted(uuid.UUID)          {}

type ParkingSpotService struct {
	db               *database.DB
	clock            clockwork.Clock
	notifier         ChangeNotifier
	validateOnUpdate bool
}

type ParkingSpotOption func(*ParkingSpotService)

// WithClock sets the clock used for registration dates.
func WithClock(clock clockwork.Clock) ParkingSpotOption {
	return func(s *ParkingSpotService) {
		s.clock = clock
	}
}

func WithNotifier(n ChangeNotifier) ParkingSpotOption {
	return func(s *ParkingSpotService) {
		s.notifier = n
	}
}

// WithValidateOnUpdate makes UpdateByID run the same uniqueness checks as
// Create, ignoring the record being updated.
func WithValidateOnUpdate(enabled bool) ParkingSpotOption {
	return func(s *ParkingSpotService) {
		s.validateOnUpdate = enabled
	}
}

func NewParkingSpotService(db *database.DB, opts ...ParkingSpotOption) *ParkingSpotService {
	s := &ParkingSpotService{
		db:       db,
		clock:    clockwork.NewRealClock(),
		notifier: noopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ParkingSpotService) Create(ctx context.Context, in models.ParkingSpotInput) (*models.ParkingSpot, error) {
	var spot *models.ParkingSpot
	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := lockParkingSpots(ctx, tx); err != nil {
			return err
		}
		if err := checkUnique(ctx, tx, in, uuid.Nil); err != nil {
			return err
		}

		var err error
		spot, err = scanParkingSpot(tx.QueryRow(ctx, `
			INSERT INTO parking_spots (id, parking_spot_number, license_plate_car, brand_car, model_car,
				color_car, registration_date, responsible_name, apartment, block)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING `+parkingSpotColumns,
			uuid.New(), in.ParkingSpotNumber, in.LicensePlateCar, in.BrandCar, in.ModelCar,
			in.ColorCar, s.clock.Now().UTC(), in.ResponsibleName, in.Apartment, in.Block,
		))
		if err != nil {
			return fmt.Errorf("failed to insert parking spot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("id", spot.ID.String()).Str("spot", spot.ParkingSpotNumber).Msg("parking spot created")
	s.notifier.ParkingSpotCreated(*spot)
	return spot, nil
}

func (s *ParkingSpotService) List(ctx context.Context) ([]models.ParkingSpot, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+parkingSpotColumns+`
		FROM parking_spots
		ORDER BY registration_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list parking spots: %w", err)
	}
	defer rows.Close()

	spots := make([]models.ParkingSpot, 0)
	for rows.Next() {
		spot, err := scanParkingSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parking spot: %w", err)
		}
		spots = append(spots, *spot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list parking spots: %w", err)
	}
	return spots, nil
}

func (s *ParkingSpotService) GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error) {
	spot, err := scanParkingSpot(s.db.Pool.QueryRow(ctx, `
		SELECT `+parkingSpotColumns+`
		FROM parking_spots WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrParkingSpotNotFound
		}
		return nil, fmt.Errorf("failed to get parking spot: %w", err)
	}
	return spot, nil
}

func (s *ParkingSpotService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM parking_spots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete parking spot: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrParkingSpotNotFound
	}

	log.Debug().Str("id", id.String()).Msg("parking spot deleted")
	s.notifier.ParkingSpotDeleted(id)
	return nil
}

// UpdateByID overwrites every mutable field. Unless the service was built
// with WithValidateOnUpdate, the uniqueness invariants are not re-checked.
func (s *ParkingSpotService) UpdateByID(ctx context.Context, id uuid.UUID, in models.ParkingSpotInput) (*models.ParkingSpot, error) {
	spot, err := s.update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("id", id.String()).Msg("parking spot updated")
	s.notifier.ParkingSpotUpdated(*spot)
	return spot, nil
}

func (s *ParkingSpotService) update(ctx context.Context, id uuid.UUID, in models.ParkingSpotInput) (*models.ParkingSpot, error) {
	if !s.validateOnUpdate {
		return updateParkingSpot(ctx, s.db.Pool, id, in)
	}

	var spot *models.ParkingSpot
	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := lockParkingSpots(ctx, tx); err != nil {
			return err
		}

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM parking_spots WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to look up parking spot: %w", err)
		}
		if !exists {
			return ErrParkingSpotNotFound
		}

		if err := checkUnique(ctx, tx, in, id); err != nil {
			return err
		}

		var err error
		spot, err = updateParkingSpot(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return spot, nil
}

func updateParkingSpot(ctx context.Context, q querier, id uuid.UUID, in models.ParkingSpotInput) (*models.ParkingSpot, error) {
	spot, err := scanParkingSpot(q.QueryRow(ctx, `
		UPDATE parking_spots
		SET parking_spot_number = $1, license_plate_car = $2, brand_car = $3, model_car = $4,
			color_car = $5, responsible_name = $6, apartment = $7, block = $8
		WHERE id = $9
		RETURNING `+parkingSpotColumns,
		in.ParkingSpotNumber, in.LicensePlateCar, in.BrandCar, in.ModelCar,
		in.ColorCar, in.ResponsibleName, in.Apartment, in.Block, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrParkingSpotNotFound
		}
		return nil, fmt.Errorf("failed to update parking spot: %w", err)
	}
	return spot, nil
}

func lockParkingSpots(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, parkingSpotLockKey); err != nil {
		return fmt.Errorf("failed to lock parking spots: %w", err)
	}
	return nil
}

// checkUnique runs the three uniqueness checks in order, stopping at the
// first conflict. Records with id exclude are ignored; uuid.Nil excludes
// nothing.
func checkUnique(ctx context.Context, q querier, in models.ParkingSpotInput, exclude uuid.UUID) error {
	checks := []struct {
		query    string
		args     []any
		conflict error
	}{
		{
			`SELECT EXISTS(SELECT 1 FROM parking_spots WHERE license_plate_car = $1 AND id <> $2)`,
			[]any{in.LicensePlateCar, exclude},
			ErrLicensePlateInUse,
		},
		{
			`SELECT EXISTS(SELECT 1 FROM parking_spots WHERE apartment = $1 AND block = $2 AND id <> $3)`,
			[]any{in.Apartment, in.Block, exclude},
			ErrApartmentBlockInUse,
		},
		{
			`SELECT EXISTS(SELECT 1 FROM parking_spots WHERE parking_spot_number = $1 AND id <> $2)`,
			[]any{in.ParkingSpotNumber, exclude},
			ErrParkingSpotNumberInUse,
		},
	}

	for _, c := range checks {
		var exists bool
		if err := q.QueryRow(ctx, c.query, c.args...).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check uniqueness: %w", err)
		}
		if exists {
			return c.conflict
		}
	}
	return nil
}

func scanParkingSpot(row pgx.Row) (*models.ParkingSpot, error) {
	var spot models.ParkingSpot
	err := row.Scan(
		&spot.ID, &spot.ParkingSpotNumber, &spot.LicensePlateCar, &spot.BrandCar, &spot.ModelCar,
		&spot.ColorCar, &spot.RegistrationDate, &spot.ResponsibleName, &spot.Apartment, &spot.Block,
	)
	if err != nil {
		return nil, err
	}
	spot.RegistrationDate = spot.RegistrationDate.UTC()
	return &spot, nil
}
