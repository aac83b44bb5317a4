package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/repo"
	"github.com/haulledger/backend/testutil"
)

// repos bundles every repo bound to the same rolled-back transaction.
type repos struct {
	trips     repo.TripRepo
	crossings repo.CrossingRepo
	vehicles  repo.VehicleRepo
}

// newTestRepos returns all repos bound to one transaction that is rolled back
// when the test finishes.
func newTestRepos(t *testing.T) repos {
	t.Helper()
	return reposFromTx(testutil.NewTx(t))
}

func reposFromTx(tx pgx.Tx) repos {
	return repos{
		trips:     repo.NewTripRepo(tx),
		crossings: repo.NewCrossingRepo(tx),
		vehicles:  repo.NewVehicleRepo(tx),
	}
}

var day = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// seedVehicle inserts a vehicle for userID and returns it.
func seedVehicle(t *testing.T, r repos, userID uuid.UUID) domain.Vehicle {
	t.Helper()
	v, err := r.vehicles.Create(context.Background(), domain.Vehicle{UserID: userID, UnitNumber: "Unit 7"})
	require.NoError(t, err)
	return v
}

// startTrip inserts an active trip with a TX seed crossing at odometer.
func startTrip(t *testing.T, r repos, userID uuid.UUID, odometer int64) (domain.Trip, domain.Crossing) {
	t.Helper()
	v := seedVehicle(t, r, userID)
	trip, seed, err := r.trips.CreateWithSeed(context.Background(),
		domain.Trip{UserID: userID, VehicleID: v.ID, StartDate: day, Notes: "load 4411"},
		domain.Crossing{State: "TX", StateName: "Texas", Odometer: odometer, CrossedAt: day.Add(6 * time.Hour)},
	)
	require.NoError(t, err)
	return trip, seed
}
