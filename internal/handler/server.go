// Package handler implements the HTTP handlers for the Haul Ledger API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
// The /events websocket stream lives outside the generated router (events.go).
package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/auth"
	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/service"
)

// VehicleServicer defines the vehicle operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type VehicleServicer interface {
	Create(ctx context.Context, userID uuid.UUID, in service.VehicleInput) (domain.Vehicle, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error)
	List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error)
	Update(ctx context.Context, userID, id uuid.UUID, in service.VehicleInput) (domain.Vehicle, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// TripServicer defines the trip lifecycle operations the handlers depend on.
type TripServicer interface {
	Start(ctx context.Context, userID uuid.UUID, in service.StartTripInput) (domain.TripLog, error)
	Get(ctx context.Context, userID, tripID uuid.UUID) (domain.TripLog, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)
	AddCrossing(ctx context.Context, userID, tripID uuid.UUID, in service.CrossingInput) (domain.Crossing, error)
	ListCrossings(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Crossing, error)
	DeleteCrossing(ctx context.Context, userID, tripID, crossingID uuid.UUID) error
	End(ctx context.Context, userID, tripID uuid.UUID, endDate *time.Time) (domain.Trip, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
}

// MileageServicer defines the mileage summary operations.
type MileageServicer interface {
	TripMileage(ctx context.Context, userID, tripID uuid.UUID) ([]domain.StateMileage, error)
	AllTime(ctx context.Context, userID uuid.UUID) ([]domain.StateMileage, error)
}

// ExportServicer defines the operations the export handler depends on.
type ExportServicer interface {
	MileageRows(ctx context.Context, userID uuid.UUID, tripID *uuid.UUID) ([]domain.MileageExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(logger)).
type Server struct {
	vehicles VehicleServicer
	trips    TripServicer
	mileage  MileageServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(vehicles VehicleServicer, trips TripServicer, mileage MileageServicer, export ExportServicer) *Server {
	return &Server{vehicles: vehicles, trips: trips, mileage: mileage, export: export}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// errNoUser means a protected route was reached without the auth middleware.
var errNoUser = errors.New("handler: no authenticated user in request context")

// currentUser returns the caller's user ID placed in the context by the auth
// middleware.
func currentUser(ctx context.Context) (uuid.UUID, error) {
	id, ok := auth.UserID(ctx)
	if !ok {
		return uuid.Nil, errNoUser
	}
	return id, nil
}
