// Package service contains the business logic for the Haul Ledger API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/events"
	"github.com/haulledger/backend/internal/repo"
)

// StartTripInput is the data needed to open a trip. Odometer is a pointer so
// that a reading of zero can be told apart from a missing one.
type StartTripInput struct {
	VehicleID uuid.UUID `json:"vehicle_id" validate:"required"`
	State     string    `json:"state" validate:"required"`
	StateName string    `json:"state_name"`
	Odometer  *int64    `json:"odometer" validate:"required,gte=0"`
	StartDate time.Time `json:"start_date" validate:"required"`
	Notes     string    `json:"notes" validate:"max=2000"`
}

// CrossingInput records entry into a jurisdiction. A nil CrossedAt means now.
type CrossingInput struct {
	State     string     `json:"state" validate:"required"`
	StateName string     `json:"state_name"`
	Odometer  *int64     `json:"odometer" validate:"required,gte=0"`
	CrossedAt *time.Time `json:"crossed_at"`
}

// TripService implements the trip lifecycle: start, record crossings, end.
// Every operation is scoped to the calling user; another user's trip is
// reported as domain.ErrNotFound.
type TripService struct {
	trips     repo.TripRepo
	crossings repo.CrossingRepo
	vehicles  repo.VehicleRepo
	bus       events.Bus
	logger    *slog.Logger
}

// NewTripService constructs a TripService. Change events are published on bus.
func NewTripService(trips repo.TripRepo, crossings repo.CrossingRepo, vehicles repo.VehicleRepo, bus events.Bus, logger *slog.Logger) *TripService {
	return &TripService{trips: trips, crossings: crossings, vehicles: vehicles, bus: bus, logger: logger}
}

// Start opens a new active trip with its seed crossing.
func (s *TripService) Start(ctx context.Context, userID uuid.UUID, in StartTripInput) (domain.TripLog, error) {
	if err := validateInput(in); err != nil {
		return domain.TripLog{}, err
	}
	// The seed is stamped at midnight UTC of the start date; a later seed
	// would make every crossing recorded now look backdated.
	if startInstant(in.StartDate).After(today()) {
		return domain.TripLog{}, fmt.Errorf("%w: start_date must not be in the future", domain.ErrValidation)
	}
	j, err := jurisdiction(in.State, in.StateName)
	if err != nil {
		return domain.TripLog{}, err
	}
	if _, err := s.vehicles.GetByID(ctx, userID, in.VehicleID); err != nil {
		return domain.TripLog{}, fmt.Errorf("service.TripService.Start: vehicle: %w", err)
	}

	log, err := domain.StartTrip(
		domain.Trip{UserID: userID, VehicleID: in.VehicleID, StartDate: in.StartDate, Notes: strings.TrimSpace(in.Notes)},
		domain.Crossing{State: j.Code, StateName: j.Name, Odometer: *in.Odometer, CrossedAt: startInstant(in.StartDate)},
	)
	if err != nil {
		return domain.TripLog{}, err
	}

	seed, _ := log.Seed()
	trip, seed, err := s.trips.CreateWithSeed(ctx, log.Trip, seed)
	if err != nil {
		return domain.TripLog{}, fmt.Errorf("service.TripService.Start: %w", err)
	}

	s.publish(ctx, events.TripStarted, userID, trip.ID, nil)
	return domain.TripLog{Trip: trip, Crossings: []domain.Crossing{seed}}, nil
}

// Get returns a trip with its crossings in chronological order.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.TripLog, error) {
	trip, err := s.trips.GetByID(ctx, userID, tripID)
	if err != nil {
		return domain.TripLog{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	crossings, err := s.crossings.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.TripLog{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	if crossings == nil {
		crossings = []domain.Crossing{}
	}
	return domain.TripLog{Trip: trip, Crossings: crossings}, nil
}

// List returns one page of the user's trips and the total number of matches.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *f.Status)
	}
	trips, total, err := s.trips.ListPaged(ctx, userID, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// AddCrossing appends a crossing to an active trip. The odometer must be
// strictly greater than the last recorded crossing.
func (s *TripService) AddCrossing(ctx context.Context, userID, tripID uuid.UUID, in CrossingInput) (domain.Crossing, error) {
	if err := validateInput(in); err != nil {
		return domain.Crossing{}, err
	}
	j, err := jurisdiction(in.State, in.StateName)
	if err != nil {
		return domain.Crossing{}, err
	}
	crossedAt := time.Now().UTC()
	if in.CrossedAt != nil {
		crossedAt = in.CrossedAt.UTC()
	}

	log, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return domain.Crossing{}, fmt.Errorf("service.TripService.AddCrossing: %w", err)
	}
	// The log is kept in recording order; a backdated crossing would
	// reorder it underneath the odometer check.
	if last, ok := log.Last(); ok && log.Trip.Status == domain.TripActive && crossedAt.Before(last.CrossedAt) {
		return domain.Crossing{}, fmt.Errorf("%w: crossed_at must not be before the previous crossing", domain.ErrValidation)
	}
	next, err := log.AppendCrossing(domain.Crossing{
		State: j.Code, StateName: j.Name, Odometer: *in.Odometer, CrossedAt: crossedAt,
	})
	if err != nil {
		return domain.Crossing{}, err
	}

	added, _ := next.Last()
	created, err := s.crossings.Create(ctx, added)
	if err != nil {
		return domain.Crossing{}, fmt.Errorf("service.TripService.AddCrossing: %w", err)
	}

	s.publish(ctx, events.CrossingAdded, userID, tripID, &created.ID)
	return created, nil
}

// ListCrossings returns a trip's crossings ordered by crossed_at ascending.
func (s *TripService) ListCrossings(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Crossing, error) {
	log, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListCrossings: %w", err)
	}
	return log.Crossings, nil
}

// DeleteCrossing removes a non-seed crossing from an active trip.
func (s *TripService) DeleteCrossing(ctx context.Context, userID, tripID, crossingID uuid.UUID) error {
	log, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.DeleteCrossing: %w", err)
	}
	if _, err := log.RemoveCrossing(crossingID); err != nil {
		return err
	}
	if err := s.crossings.Delete(ctx, tripID, crossingID); err != nil {
		return fmt.Errorf("service.TripService.DeleteCrossing: %w", err)
	}

	s.publish(ctx, events.CrossingDeleted, userID, tripID, &crossingID)
	return nil
}

// End completes an active trip. A nil endDate means today (UTC).
func (s *TripService) End(ctx context.Context, userID, tripID uuid.UUID, endDate *time.Time) (domain.Trip, error) {
	end := today()
	if endDate != nil {
		end = *endDate
	}

	log, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.End: %w", err)
	}
	if _, err := log.End(end); err != nil {
		return domain.Trip{}, err
	}

	trip, err := s.trips.Complete(ctx, userID, tripID, end)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.End: %w", err)
	}

	s.publish(ctx, events.TripEnded, userID, tripID, nil)
	return trip, nil
}

// Delete removes a trip in either state together with its crossings.
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	if err := s.trips.Delete(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	s.publish(ctx, events.TripDeleted, userID, tripID, nil)
	return nil
}

// publish emits a change event. The write has already committed, so a bus
// failure is logged rather than returned.
func (s *TripService) publish(ctx context.Context, kind events.Kind, userID, tripID uuid.UUID, crossingID *uuid.UUID) {
	e := events.Event{Kind: kind, UserID: userID, TripID: tripID, CrossingID: crossingID, At: time.Now().UTC()}
	if err := s.bus.Publish(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "publish event failed", "kind", kind, "trip_id", tripID, "err", err)
	}
}

// jurisdiction resolves a state code against the catalog. An explicit name
// overrides the catalog name.
func jurisdiction(code, name string) (domain.Jurisdiction, error) {
	j, ok := domain.LookupJurisdiction(code)
	if !ok {
		return domain.Jurisdiction{}, fmt.Errorf("%w: unknown jurisdiction %q", domain.ErrValidation, code)
	}
	if n := strings.TrimSpace(name); n != "" {
		j.Name = n
	}
	return j, nil
}

// startInstant places the seed crossing at midnight UTC of the start date.
func startInstant(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return startInstant(time.Now().UTC())
}
