package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/haulledger/backend/internal/auth"
	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/service"
)

// ---- mocks -----------------------------------------------------------------
// Set only the method fields your test needs.

type mockVehicleServicer struct {
	create  func(ctx context.Context, userID uuid.UUID, in service.VehicleInput) (domain.Vehicle, error)
	getByID func(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error)
	list    func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error)
	update  func(ctx context.Context, userID, id uuid.UUID, in service.VehicleInput) (domain.Vehicle, error)
	delete  func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockVehicleServicer) Create(ctx context.Context, userID uuid.UUID, in service.VehicleInput) (domain.Vehicle, error) {
	return m.create(ctx, userID, in)
}
func (m *mockVehicleServicer) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockVehicleServicer) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error) {
	return m.list(ctx, userID, p)
}
func (m *mockVehicleServicer) Update(ctx context.Context, userID, id uuid.UUID, in service.VehicleInput) (domain.Vehicle, error) {
	return m.update(ctx, userID, id, in)
}
func (m *mockVehicleServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockTripServicer struct {
	start          func(ctx context.Context, userID uuid.UUID, in service.StartTripInput) (domain.TripLog, error)
	get            func(ctx context.Context, userID, tripID uuid.UUID) (domain.TripLog, error)
	list           func(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)
	addCrossing    func(ctx context.Context, userID, tripID uuid.UUID, in service.CrossingInput) (domain.Crossing, error)
	listCrossings  func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Crossing, error)
	deleteCrossing func(ctx context.Context, userID, tripID, crossingID uuid.UUID) error
	end            func(ctx context.Context, userID, tripID uuid.UUID, endDate *time.Time) (domain.Trip, error)
	delete         func(ctx context.Context, userID, tripID uuid.UUID) error
}

func (m *mockTripServicer) Start(ctx context.Context, userID uuid.UUID, in service.StartTripInput) (domain.TripLog, error) {
	return m.start(ctx, userID, in)
}
func (m *mockTripServicer) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.TripLog, error) {
	return m.get(ctx, userID, tripID)
}
func (m *mockTripServicer) List(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, userID, f, p)
}
func (m *mockTripServicer) AddCrossing(ctx context.Context, userID, tripID uuid.UUID, in service.CrossingInput) (domain.Crossing, error) {
	return m.addCrossing(ctx, userID, tripID, in)
}
func (m *mockTripServicer) ListCrossings(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Crossing, error) {
	return m.listCrossings(ctx, userID, tripID)
}
func (m *mockTripServicer) DeleteCrossing(ctx context.Context, userID, tripID, crossingID uuid.UUID) error {
	return m.deleteCrossing(ctx, userID, tripID, crossingID)
}
func (m *mockTripServicer) End(ctx context.Context, userID, tripID uuid.UUID, endDate *time.Time) (domain.Trip, error) {
	return m.end(ctx, userID, tripID, endDate)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}

type mockMileageServicer struct {
	tripMileage func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.StateMileage, error)
	allTime     func(ctx context.Context, userID uuid.UUID) ([]domain.StateMileage, error)
}

func (m *mockMileageServicer) TripMileage(ctx context.Context, userID, tripID uuid.UUID) ([]domain.StateMileage, error) {
	return m.tripMileage(ctx, userID, tripID)
}
func (m *mockMileageServicer) AllTime(ctx context.Context, userID uuid.UUID) ([]domain.StateMileage, error) {
	return m.allTime(ctx, userID)
}

type mockExportServicer struct {
	mileageRows func(ctx context.Context, userID uuid.UUID, tripID *uuid.UUID) ([]domain.MileageExportRow, error)
}

func (m *mockExportServicer) MileageRows(ctx context.Context, userID uuid.UUID, tripID *uuid.UUID) ([]domain.MileageExportRow, error) {
	return m.mileageRows(ctx, userID, tripID)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.VehicleServicer = (*mockVehicleServicer)(nil)
	_ handler.TripServicer    = (*mockTripServicer)(nil)
	_ handler.MileageServicer = (*mockMileageServicer)(nil)
	_ handler.ExportServicer  = (*mockExportServicer)(nil)
)

// ---- wiring ----------------------------------------------------------------

// testUser is the authenticated caller for every request in this package.
var testUser = uuid.New()

// services groups the mocks handed to the Server; nil fields stay nil.
type services struct {
	vehicles handler.VehicleServicer
	trips    handler.TripServicer
	mileage  handler.MileageServicer
	export   handler.ExportServicer
}

// newHTTPHandler wires a Server into the generated chi router the same way
// main.go does, with testUser already authenticated.
func newHTTPHandler(s services) http.Handler {
	srv := handler.NewServer(s.vehicles, s.trips, s.mileage, s.export)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(logger)),
		gen.ChiServerOptions{ErrorHandlerFunc: handler.ParamErrorHandler},
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), testUser)))
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body io.Reader) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

var day = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:        uuid.New(),
		UserID:    testUser,
		VehicleID: uuid.New(),
		Status:    domain.TripActive,
		StartDate: day,
		Notes:     "load 4411",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func crossingFixture(tripID uuid.UUID, state string, odometer int64, hour int) domain.Crossing {
	return domain.Crossing{
		ID:        uuid.New(),
		TripID:    tripID,
		State:     state,
		StateName: state,
		Odometer:  odometer,
		CrossedAt: day.Add(time.Duration(hour) * time.Hour),
		CreatedAt: time.Now().UTC(),
	}
}
