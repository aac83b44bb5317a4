package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/service"
)

// ---- POST /trips -----------------------------------------------------------

func TestStartTrip_201(t *testing.T) {
	trip := tripFixture()
	seed := crossingFixture(trip.ID, "TX", 120_000, 0)
	var got service.StartTripInput
	svc := &mockTripServicer{
		start: func(_ context.Context, userID uuid.UUID, in service.StartTripInput) (domain.TripLog, error) {
			assert.Equal(t, testUser, userID)
			got = in
			return domain.TripLog{Trip: trip, Crossings: []domain.Crossing{seed}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"vehicle_id": trip.VehicleID,
		"state":      "TX",
		"odometer":   120000,
		"start_date": "2025-06-01",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got.Odometer)
	assert.Equal(t, int64(120_000), *got.Odometer)
	assert.True(t, got.StartDate.Equal(day))

	var resp gen.TripDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, trip.ID, resp.Trip.Id)
	assert.Equal(t, gen.TripStatusActive, resp.Trip.Status)
	require.Len(t, resp.Crossings, 1)
	assert.Empty(t, resp.Mileage.Entries)
	assert.Zero(t, resp.Mileage.TotalMiles)
}

func TestStartTrip_MissingOdometerReachesServiceAsNil(t *testing.T) {
	svc := &mockTripServicer{
		start: func(_ context.Context, _ uuid.UUID, in service.StartTripInput) (domain.TripLog, error) {
			assert.Nil(t, in.Odometer)
			return domain.TripLog{}, fmt.Errorf("%w: odometer is required", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"vehicle_id": uuid.New(), "state": "TX", "start_date": "2025-06-01",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "odometer is required", decodeError(t, rec.Body).Error.Message)
}

func TestStartTrip_404_UnknownVehicle(t *testing.T) {
	svc := &mockTripServicer{
		start: func(context.Context, uuid.UUID, service.StartTripInput) (domain.TripLog, error) {
			return domain.TripLog{}, fmt.Errorf("service.TripService.Start: vehicle: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"vehicle_id": uuid.New(), "state": "TX", "odometer": 1, "start_date": "2025-06-01",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200_StatusFilter(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context, _ uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			require.NotNil(t, f.Status)
			assert.Equal(t, domain.TripCompleted, *f.Status)
			assert.Equal(t, 1, p.Page)
			assert.Equal(t, 20, p.Limit)
			return []domain.Trip{tripFixture(), tripFixture()}, 2, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?status=completed", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.TripList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestListTrips_422_UnknownStatus(t *testing.T) {
	svc := &mockTripServicer{
		list: func(context.Context, uuid.UUID, domain.TripFilter, domain.PaginationParams) ([]domain.Trip, int64, error) {
			return nil, 0, fmt.Errorf("%w: unknown status \"paused\"", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?status=paused", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{tripId} ---------------------------------------------------

func TestGetTrip_200_WithMileage(t *testing.T) {
	trip := tripFixture()
	svc := &mockTripServicer{
		get: func(_ context.Context, _ uuid.UUID, id uuid.UUID) (domain.TripLog, error) {
			assert.Equal(t, trip.ID, id)
			return domain.TripLog{Trip: trip, Crossings: []domain.Crossing{
				crossingFixture(trip.ID, "TX", 0, 0),
				crossingFixture(trip.ID, "OK", 452, 5),
				crossingFixture(trip.ID, "AR", 798, 9),
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.TripDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Crossings, 3)
	assert.Equal(t, []gen.StateMileage{
		{State: "TX", StateName: "TX", Miles: 452},
		{State: "OK", StateName: "OK", Miles: 346},
	}, resp.Mileage.Entries)
	assert.Equal(t, int64(798), resp.Mileage.TotalMiles)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		get: func(context.Context, uuid.UUID, uuid.UUID) (domain.TripLog, error) {
			return domain.TripLog{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeError(t, rec.Body).Error.Message)
}

func TestGetTrip_500_HidesInternalError(t *testing.T) {
	svc := &mockTripServicer{
		get: func(context.Context, uuid.UUID, uuid.UUID) (domain.TripLog, error) {
			return domain.TripLog{}, errors.New("connection refused: 10.0.0.5:5432")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

// ---- POST /trips/{tripId}/end ----------------------------------------------

func TestEndTrip_200_WithDate(t *testing.T) {
	trip := tripFixture()
	end := day.AddDate(0, 0, 3)
	svc := &mockTripServicer{
		end: func(_ context.Context, _ uuid.UUID, _ uuid.UUID, endDate *time.Time) (domain.Trip, error) {
			require.NotNil(t, endDate)
			assert.True(t, endDate.Equal(end))
			trip.Status = domain.TripCompleted
			trip.EndDate = endDate
			return trip, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+trip.ID.String()+"/end", jsonBody(t, map[string]any{"end_date": "2025-06-04"}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.TripStatusCompleted, resp.Status)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2025-06-04", resp.EndDate.Format("2006-01-02"))
}

func TestEndTrip_NoBodyMeansToday(t *testing.T) {
	svc := &mockTripServicer{
		end: func(_ context.Context, _ uuid.UUID, _ uuid.UUID, endDate *time.Time) (domain.Trip, error) {
			assert.Nil(t, endDate)
			return tripFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/end", strings.NewReader(""))
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEndTrip_409_AlreadyCompleted(t *testing.T) {
	svc := &mockTripServicer{
		end: func(context.Context, uuid.UUID, uuid.UUID, *time.Time) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: trip is already completed", domain.ErrConflict)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/end", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "conflict", resp.Error.Code)
	assert.Equal(t, "trip is already completed", resp.Error.Message)
}

// ---- DELETE /trips/{tripId} ------------------------------------------------

func TestDeleteTrip(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "deleted", wantCode: http.StatusNoContent},
		{name: "missing", err: domain.ErrNotFound, wantCode: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTripServicer{
				delete: func(context.Context, uuid.UUID, uuid.UUID) error { return tc.err },
			}
			req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil)
			rec := httptest.NewRecorder()

			newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
