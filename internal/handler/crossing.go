package handler

import (
	"context"
	"errors"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/service"
)

// ListCrossings handles GET /trips/{tripId}/crossings.
func (s *Server) ListCrossings(ctx context.Context, req gen.ListCrossingsRequestObject) (gen.ListCrossingsResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	crossings, err := s.trips.ListCrossings(ctx, userID, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListCrossings404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}
	out := make(gen.ListCrossings200JSONResponse, len(crossings))
	for i, c := range crossings {
		out[i] = crossingToResponse(c)
	}
	return out, nil
}

// AddCrossing handles POST /trips/{tripId}/crossings.
// 409 when the trip is completed; 422 when the odometer does not advance.
func (s *Server) AddCrossing(ctx context.Context, req gen.AddCrossingRequestObject) (gen.AddCrossingResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.AddCrossing422JSONResponse(requestBody("request body is required")), nil
	}

	in := service.CrossingInput{
		State:     req.Body.State,
		Odometer:  req.Body.Odometer,
		CrossedAt: req.Body.CrossedAt,
	}
	if req.Body.StateName != nil {
		in.StateName = *req.Body.StateName
	}

	created, err := s.trips.AddCrossing(ctx, userID, req.TripId, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.AddCrossing404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.AddCrossing409JSONResponse(conflictBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.AddCrossing422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.AddCrossing201JSONResponse(crossingToResponse(created)), nil
}

// DeleteCrossing handles DELETE /trips/{tripId}/crossings/{crossingId}.
// The seed crossing and crossings of completed trips cannot be deleted (409).
func (s *Server) DeleteCrossing(ctx context.Context, req gen.DeleteCrossingRequestObject) (gen.DeleteCrossingResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.DeleteCrossing(ctx, userID, req.TripId, req.CrossingId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteCrossing404JSONResponse(notFoundBody("crossing not found")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.DeleteCrossing409JSONResponse(conflictBody(err)), nil
		}
		return nil, err
	}
	return gen.DeleteCrossing204Response{}, nil
}

func crossingToResponse(c domain.Crossing) gen.Crossing {
	return gen.Crossing{
		Id:        c.ID,
		TripId:    c.TripID,
		State:     c.State,
		StateName: c.StateName,
		Odometer:  c.Odometer,
		CrossedAt: c.CrossedAt,
		CreatedAt: c.CreatedAt,
	}
}
