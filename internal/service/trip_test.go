package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/events"
	"github.com/haulledger/backend/internal/service"
)

// ---- fixtures ---------------------------------------------------------------

var (
	userID    = uuid.New()
	vehicleID = uuid.New()
	startDay  = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

// tripStore is an in-memory backing for the trip and crossing mocks so tests
// can drive a whole lifecycle without wiring each call by hand.
type tripStore struct {
	trip      domain.Trip
	crossings []domain.Crossing
}

func newTripStore(status domain.TripStatus, odometers ...int64) *tripStore {
	s := &tripStore{trip: domain.Trip{
		ID: uuid.New(), UserID: userID, VehicleID: vehicleID, Status: status, StartDate: startDay,
	}}
	for i, odo := range odometers {
		s.crossings = append(s.crossings, domain.Crossing{
			ID: uuid.New(), TripID: s.trip.ID, State: "TX", StateName: "Texas",
			Odometer: odo, CrossedAt: startDay.Add(time.Duration(i) * time.Hour),
		})
	}
	return s
}

func (s *tripStore) tripRepo() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, uid, id uuid.UUID) (domain.Trip, error) {
			if uid != s.trip.UserID || id != s.trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return s.trip, nil
		},
		complete: func(_ context.Context, _, _ uuid.UUID, end time.Time) (domain.Trip, error) {
			s.trip.Status = domain.TripCompleted
			s.trip.EndDate = &end
			return s.trip, nil
		},
		delete: func(_ context.Context, _, _ uuid.UUID) error { return nil },
	}
}

func (s *tripStore) crossingRepo() *mockCrossingRepo {
	return &mockCrossingRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Crossing, error) {
			return append([]domain.Crossing(nil), s.crossings...), nil
		},
		create: func(_ context.Context, c domain.Crossing) (domain.Crossing, error) {
			c.ID = uuid.New()
			s.crossings = append(s.crossings, c)
			return c, nil
		},
		delete: func(_ context.Context, _, id uuid.UUID) error {
			for i, c := range s.crossings {
				if c.ID == id {
					s.crossings = append(s.crossings[:i], s.crossings[i+1:]...)
					return nil
				}
			}
			return domain.ErrNotFound
		},
	}
}

func ownedVehicleRepo() *mockVehicleRepo {
	return &mockVehicleRepo{
		getByID: func(_ context.Context, uid, id uuid.UUID) (domain.Vehicle, error) {
			if uid != userID || id != vehicleID {
				return domain.Vehicle{}, domain.ErrNotFound
			}
			return domain.Vehicle{ID: id, UserID: uid, UnitNumber: "Unit 7"}, nil
		},
	}
}

func newTripService(s *tripStore, bus *recordingBus) *service.TripService {
	return service.NewTripService(s.tripRepo(), s.crossingRepo(), ownedVehicleRepo(), bus, discardLogger())
}

func validStart() service.StartTripInput {
	return service.StartTripInput{
		VehicleID: vehicleID,
		State:     "tx",
		Odometer:  int64Ptr(120_000),
		StartDate: startDay,
		Notes:     "  load 4411 ",
	}
}

// ---- Start ------------------------------------------------------------------

func TestTripService_Start_Valid(t *testing.T) {
	bus := &recordingBus{}
	var gotTrip domain.Trip
	var gotSeed domain.Crossing
	trips := &mockTripRepo{
		createWithSeed: func(_ context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error) {
			gotTrip, gotSeed = trip, seed
			trip.ID = uuid.New()
			seed.ID = uuid.New()
			seed.TripID = trip.ID
			return trip, seed, nil
		},
	}
	svc := service.NewTripService(trips, &mockCrossingRepo{}, ownedVehicleRepo(), bus, discardLogger())

	log, err := svc.Start(context.Background(), userID, validStart())

	require.NoError(t, err)
	assert.Equal(t, domain.TripActive, gotTrip.Status)
	assert.Equal(t, "load 4411", gotTrip.Notes)
	assert.Equal(t, "TX", gotSeed.State, "state code is normalized")
	assert.Equal(t, "Texas", gotSeed.StateName, "name defaults to the catalog")
	assert.Equal(t, int64(120_000), gotSeed.Odometer)
	require.Len(t, log.Crossings, 1)
	assert.Equal(t, log.Trip.ID, log.Crossings[0].TripID)
	assert.Equal(t, []events.Kind{events.TripStarted}, bus.kinds())
}

func TestTripService_Start_ZeroOdometerIsValid(t *testing.T) {
	trips := &mockTripRepo{
		createWithSeed: func(_ context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error) {
			return trip, seed, nil
		},
	}
	svc := service.NewTripService(trips, &mockCrossingRepo{}, ownedVehicleRepo(), &recordingBus{}, discardLogger())
	in := validStart()
	in.Odometer = int64Ptr(0)

	_, err := svc.Start(context.Background(), userID, in)

	assert.NoError(t, err)
}

func TestTripService_Start_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.StartTripInput)
	}{
		{name: "missing vehicle", mutate: func(in *service.StartTripInput) { in.VehicleID = uuid.Nil }},
		{name: "missing state", mutate: func(in *service.StartTripInput) { in.State = "" }},
		{name: "unknown state", mutate: func(in *service.StartTripInput) { in.State = "ZZ" }},
		{name: "missing odometer", mutate: func(in *service.StartTripInput) { in.Odometer = nil }},
		{name: "negative odometer", mutate: func(in *service.StartTripInput) { in.Odometer = int64Ptr(-1) }},
		{name: "missing start date", mutate: func(in *service.StartTripInput) { in.StartDate = time.Time{} }},
		{name: "future start date", mutate: func(in *service.StartTripInput) { in.StartDate = time.Now().UTC().AddDate(0, 0, 1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bus := &recordingBus{}
			svc := service.NewTripService(&mockTripRepo{}, &mockCrossingRepo{}, ownedVehicleRepo(), bus, discardLogger())
			in := validStart()
			tc.mutate(&in)

			_, err := svc.Start(context.Background(), userID, in)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, bus.kinds(), "nothing is published on failure")
		})
	}
}

func TestTripService_Start_TodayAcceptsCrossingsRecordedNow(t *testing.T) {
	s := newTripStore(domain.TripActive)
	trips := s.tripRepo()
	trips.createWithSeed = func(_ context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error) {
		trip.ID = s.trip.ID
		seed.ID = uuid.New()
		seed.TripID = trip.ID
		s.trip = trip
		s.crossings = []domain.Crossing{seed}
		return trip, seed, nil
	}
	svc := service.NewTripService(trips, s.crossingRepo(), ownedVehicleRepo(), &recordingBus{}, discardLogger())
	in := validStart()
	in.StartDate = time.Now().UTC()

	log, err := svc.Start(context.Background(), userID, in)
	require.NoError(t, err)

	_, err = svc.AddCrossing(context.Background(), userID, log.Trip.ID, service.CrossingInput{
		State:    "OK",
		Odometer: int64Ptr(120_050),
	})
	assert.NoError(t, err)
}

func TestTripService_Start_ForeignVehicle(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{}, &mockCrossingRepo{}, ownedVehicleRepo(), &recordingBus{}, discardLogger())

	_, err := svc.Start(context.Background(), uuid.New(), validStart())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Get / List -------------------------------------------------------------

func TestTripService_Get_OtherUser(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{})

	_, err := svc.Get(context.Background(), uuid.New(), s.trip.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List_RejectsUnknownStatus(t *testing.T) {
	svc := newTripService(newTripStore(domain.TripActive), &recordingBus{})
	bogus := domain.TripStatus("paused")

	_, _, err := svc.List(context.Background(), userID, domain.TripFilter{Status: &bogus}, domain.NewPaginationParams(nil, nil))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_List_NilBecomesEmpty(t *testing.T) {
	trips := &mockTripRepo{
		listPaged: func(context.Context, uuid.UUID, domain.TripFilter, domain.PaginationParams) ([]domain.Trip, int64, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewTripService(trips, &mockCrossingRepo{}, ownedVehicleRepo(), &recordingBus{}, discardLogger())

	got, total, err := svc.List(context.Background(), userID, domain.TripFilter{}, domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Zero(t, total)
}

// ---- AddCrossing ------------------------------------------------------------

func TestTripService_AddCrossing_Valid(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	bus := &recordingBus{}
	svc := newTripService(s, bus)
	at := startDay.Add(5 * time.Hour)

	got, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{
		State: "OK", Odometer: int64Ptr(452), CrossedAt: &at,
	})

	require.NoError(t, err)
	assert.Equal(t, s.trip.ID, got.TripID)
	assert.Equal(t, "Oklahoma", got.StateName)
	assert.Len(t, s.crossings, 2)
	require.Len(t, bus.events, 1)
	assert.Equal(t, events.CrossingAdded, bus.events[0].Kind)
	require.NotNil(t, bus.events[0].CrossingID)
	assert.Equal(t, got.ID, *bus.events[0].CrossingID)
}

func TestTripService_AddCrossing_DefaultsToNow(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{})
	before := time.Now().UTC()

	got, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{State: "OK", Odometer: int64Ptr(10)})

	require.NoError(t, err)
	assert.False(t, got.CrossedAt.Before(before))
}

func TestTripService_AddCrossing_OdometerNotIncreasing(t *testing.T) {
	s := newTripStore(domain.TripActive, 0, 452)
	bus := &recordingBus{}
	svc := newTripService(s, bus)

	_, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{State: "AR", Odometer: int64Ptr(452)})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, s.crossings, 2, "rejected crossing is not stored")
	assert.Empty(t, bus.kinds())
}

func TestTripService_AddCrossing_Backdated(t *testing.T) {
	s := newTripStore(domain.TripActive, 0, 452)
	svc := newTripService(s, &recordingBus{})
	early := startDay.Add(-time.Hour)

	_, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{State: "AR", Odometer: int64Ptr(900), CrossedAt: &early})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_AddCrossing_CompletedTrip(t *testing.T) {
	s := newTripStore(domain.TripCompleted, 0)
	svc := newTripService(s, &recordingBus{})

	_, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{State: "OK", Odometer: int64Ptr(10)})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTripService_AddCrossing_MissingOdometer(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{})

	_, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{State: "OK"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "odometer is required")
}

// ---- DeleteCrossing ---------------------------------------------------------

func TestTripService_DeleteCrossing(t *testing.T) {
	s := newTripStore(domain.TripActive, 0, 100, 200)
	bus := &recordingBus{}
	svc := newTripService(s, bus)
	middle := s.crossings[1].ID

	require.NoError(t, svc.DeleteCrossing(context.Background(), userID, s.trip.ID, middle))

	assert.Len(t, s.crossings, 2)
	assert.Equal(t, []events.Kind{events.CrossingDeleted}, bus.kinds())
}

func TestTripService_DeleteCrossing_Seed(t *testing.T) {
	s := newTripStore(domain.TripActive, 0, 100)
	svc := newTripService(s, &recordingBus{})

	err := svc.DeleteCrossing(context.Background(), userID, s.trip.ID, s.crossings[0].ID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, s.crossings, 2)
}

func TestTripService_DeleteCrossing_Unknown(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{})

	err := svc.DeleteCrossing(context.Background(), userID, s.trip.ID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- End / Delete -----------------------------------------------------------

func TestTripService_End(t *testing.T) {
	s := newTripStore(domain.TripActive, 0, 452)
	bus := &recordingBus{}
	svc := newTripService(s, bus)
	end := startDay.AddDate(0, 0, 2)

	trip, err := svc.End(context.Background(), userID, s.trip.ID, &end)

	require.NoError(t, err)
	assert.Equal(t, domain.TripCompleted, trip.Status)
	require.NotNil(t, trip.EndDate)
	assert.True(t, trip.EndDate.Equal(end))
	assert.Equal(t, []events.Kind{events.TripEnded}, bus.kinds())

	_, err = svc.End(context.Background(), userID, s.trip.ID, &end)
	assert.ErrorIs(t, err, domain.ErrConflict, "ending twice is a conflict")
}

func TestTripService_End_DefaultsToToday(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{})

	trip, err := svc.End(context.Background(), userID, s.trip.ID, nil)

	require.NoError(t, err)
	require.NotNil(t, trip.EndDate)
	assert.Equal(t, time.Now().UTC().Format(time.DateOnly), trip.EndDate.Format(time.DateOnly))
}

func TestTripService_End_BeforeStart(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{})
	early := startDay.AddDate(0, 0, -1)

	_, err := svc.End(context.Background(), userID, s.trip.ID, &early)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Delete_Publishes(t *testing.T) {
	s := newTripStore(domain.TripCompleted, 0)
	bus := &recordingBus{}
	svc := newTripService(s, bus)

	require.NoError(t, svc.Delete(context.Background(), userID, s.trip.ID))

	assert.Equal(t, []events.Kind{events.TripDeleted}, bus.kinds())
}

func TestTripService_Delete_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	trips := &mockTripRepo{delete: func(context.Context, uuid.UUID, uuid.UUID) error { return repoErr }}
	bus := &recordingBus{}
	svc := service.NewTripService(trips, &mockCrossingRepo{}, ownedVehicleRepo(), bus, discardLogger())

	err := svc.Delete(context.Background(), userID, uuid.New())

	assert.ErrorIs(t, err, repoErr)
	assert.Empty(t, bus.kinds())
}

func TestTripService_BusFailureDoesNotFailWrite(t *testing.T) {
	s := newTripStore(domain.TripActive, 0)
	svc := newTripService(s, &recordingBus{err: errors.New("redis down")})

	_, err := svc.AddCrossing(context.Background(), userID, s.trip.ID, service.CrossingInput{State: "OK", Odometer: int64Ptr(10)})

	assert.NoError(t, err)
}
