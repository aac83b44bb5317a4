package handler

import (
	"context"
	"errors"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/mileage"
)

// GetTripMileage handles GET /trips/{tripId}/mileage.
func (s *Server) GetTripMileage(ctx context.Context, req gen.GetTripMileageRequestObject) (gen.GetTripMileageResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.mileage.TripMileage(ctx, userID, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripMileage404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}
	return gen.GetTripMileage200JSONResponse(summaryToResponse(entries)), nil
}

// GetMileageSummary handles GET /mileage: all completed trips combined.
func (s *Server) GetMileageSummary(ctx context.Context, _ gen.GetMileageSummaryRequestObject) (gen.GetMileageSummaryResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.mileage.AllTime(ctx, userID)
	if err != nil {
		return nil, err
	}
	return gen.GetMileageSummary200JSONResponse(summaryToResponse(entries)), nil
}

func summaryToResponse(entries []domain.StateMileage) gen.MileageSummary {
	out := make([]gen.StateMileage, len(entries))
	for i, e := range entries {
		out[i] = gen.StateMileage{State: e.State, StateName: e.StateName, Miles: e.Miles}
	}
	return gen.MileageSummary{Entries: out, TotalMiles: mileage.Total(entries)}
}
