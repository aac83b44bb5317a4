package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/mileage"
	"github.com/haulledger/backend/internal/repo"
	"github.com/haulledger/backend/internal/summary"
)

// MileageService answers per-state mileage questions. Results are served
// from the summary cache, which the event bus invalidates on every change.
type MileageService struct {
	trips     repo.TripRepo
	crossings repo.CrossingRepo
	cache     *summary.Cache
}

// NewMileageService constructs a MileageService.
func NewMileageService(trips repo.TripRepo, crossings repo.CrossingRepo, cache *summary.Cache) *MileageService {
	return &MileageService{trips: trips, crossings: crossings, cache: cache}
}

// TripMileage returns the per-state miles of one trip, active or completed.
func (s *MileageService) TripMileage(ctx context.Context, userID, tripID uuid.UUID) ([]domain.StateMileage, error) {
	// Ownership is checked on every call, including cache hits.
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.MileageService.TripMileage: %w", err)
	}
	entries, err := s.cache.Get(ctx, summary.TripKey(userID, tripID), func(ctx context.Context) ([]domain.StateMileage, error) {
		crossings, err := s.crossings.ListByTripID(ctx, tripID)
		if err != nil {
			return nil, err
		}
		return mileage.Aggregate(crossings)
	})
	if err != nil {
		return nil, fmt.Errorf("service.MileageService.TripMileage: %w", err)
	}
	return entries, nil
}

// AllTime returns the per-state miles across all of the user's completed trips.
func (s *MileageService) AllTime(ctx context.Context, userID uuid.UUID) ([]domain.StateMileage, error) {
	entries, err := s.cache.Get(ctx, summary.AllTimeKey(userID), func(ctx context.Context) ([]domain.StateMileage, error) {
		trips, err := s.crossings.ListCompletedByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return mileage.AggregateTrips(trips)
	})
	if err != nil {
		return nil, fmt.Errorf("service.MileageService.AllTime: %w", err)
	}
	return entries, nil
}
