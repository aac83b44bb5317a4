package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulledger/backend/internal/domain"
)

func TestCache_FlightsDoNotOutliveComputations(t *testing.T) {
	c := NewCache(0)
	ctx := context.Background()
	userID := uuid.New()
	compute := func(context.Context) ([]domain.StateMileage, error) { return nil, nil }

	for i := 0; i < 100; i++ {
		tripID := uuid.New()
		_, err := c.Get(ctx, TripKey(userID, tripID), compute)
		require.NoError(t, err)
		c.Invalidate(userID, tripID)
	}

	assert.Empty(t, c.flights)
	assert.Empty(t, c.entries)
}

func TestCache_FlightReleasedAfterStaleCompute(t *testing.T) {
	c := NewCache(0)
	userID, tripID := uuid.New(), uuid.New()
	key := TripKey(userID, tripID)

	_, err := c.Get(context.Background(), key, func(context.Context) ([]domain.StateMileage, error) {
		c.Invalidate(userID, tripID)
		assert.Len(t, c.flights, 1)
		return nil, nil
	})
	require.NoError(t, err)

	assert.Empty(t, c.flights)
}

func TestCache_ExpiresOnClock(t *testing.T) {
	c := NewCache(time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	key := AllTimeKey(uuid.New())
	calls := 0
	compute := func(context.Context) ([]domain.StateMileage, error) {
		calls++
		return []domain.StateMileage{{State: "TX", Miles: int64(calls)}}, nil
	}

	_, err := c.Get(context.Background(), key, compute)
	require.NoError(t, err)

	now = now.Add(59 * time.Second)
	got, err := c.Get(context.Background(), key, compute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got[0].Miles)

	now = now.Add(time.Second)
	got, err = c.Get(context.Background(), key, compute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got[0].Miles)
}
