package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/events"
	"github.com/haulledger/backend/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs. Calling an unset field panics, which flags an
// unexpected repo call.

type mockTripRepo struct {
	createWithSeed func(ctx context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error)
	getByID        func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	listPaged      func(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)
	complete       func(ctx context.Context, userID, id uuid.UUID, endDate time.Time) (domain.Trip, error)
	delete         func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTripRepo) CreateWithSeed(ctx context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error) {
	return m.createWithSeed(ctx, trip, seed)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, f, p)
}
func (m *mockTripRepo) Complete(ctx context.Context, userID, id uuid.UUID, endDate time.Time) (domain.Trip, error) {
	return m.complete(ctx, userID, id, endDate)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockCrossingRepo struct {
	create              func(ctx context.Context, c domain.Crossing) (domain.Crossing, error)
	listByTripID        func(ctx context.Context, tripID uuid.UUID) ([]domain.Crossing, error)
	listCompletedByUser func(ctx context.Context, userID uuid.UUID) ([][]domain.Crossing, error)
	delete              func(ctx context.Context, tripID, crossingID uuid.UUID) error
}

func (m *mockCrossingRepo) Create(ctx context.Context, c domain.Crossing) (domain.Crossing, error) {
	return m.create(ctx, c)
}
func (m *mockCrossingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Crossing, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockCrossingRepo) ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([][]domain.Crossing, error) {
	return m.listCompletedByUser(ctx, userID)
}
func (m *mockCrossingRepo) Delete(ctx context.Context, tripID, crossingID uuid.UUID) error {
	return m.delete(ctx, tripID, crossingID)
}

type mockVehicleRepo struct {
	create    func(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	getByID   func(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error)
	listPaged func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error)
	update    func(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	delete    func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	return m.create(ctx, v)
}
func (m *mockVehicleRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockVehicleRepo) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error) {
	return m.listPaged(ctx, userID, p)
}
func (m *mockVehicleRepo) Update(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	return m.update(ctx, v)
}
func (m *mockVehicleRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.CrossingRepo = (*mockCrossingRepo)(nil)
	_ repo.VehicleRepo  = (*mockVehicleRepo)(nil)
)

// recordingBus captures published events.
type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return b.err
}

func (b *recordingBus) Subscribe(events.Handler) func() { return func() {} }

func (b *recordingBus) kinds() []events.Kind {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.Kind, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Kind)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func int64Ptr(v int64) *int64 { return &v }
