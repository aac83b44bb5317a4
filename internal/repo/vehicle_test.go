package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulledger/backend/internal/domain"
)

func TestVehicleRepo_CRUD(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	userID := uuid.New()

	created, err := r.vehicles.Create(ctx, domain.Vehicle{
		UserID: userID, UnitNumber: "Unit 12", Name: "Pete 579", VIN: "1XPBD49X1MD123456",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := r.vehicles.GetByID(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pete 579", got.Name)

	got.Name = "Peterbilt 579"
	updated, err := r.vehicles.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Peterbilt 579", updated.Name)

	list, total, err := r.vehicles.ListPaged(ctx, userID, domain.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	require.NoError(t, r.vehicles.Delete(ctx, userID, created.ID))
	_, err = r.vehicles.GetByID(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleRepo_GetByID_OtherUser(t *testing.T) {
	r := newTestRepos(t)
	v := seedVehicle(t, r, uuid.New())

	_, err := r.vehicles.GetByID(context.Background(), uuid.New(), v.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleRepo_Delete_WithTrips(t *testing.T) {
	r := newTestRepos(t)
	userID := uuid.New()
	trip, _ := startTrip(t, r, userID, 0)

	err := r.vehicles.Delete(context.Background(), userID, trip.VehicleID)

	assert.ErrorIs(t, err, domain.ErrConflict)
}
