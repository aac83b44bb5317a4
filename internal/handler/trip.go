package handler

import (
	"context"
	"errors"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/mileage"
	"github.com/haulledger/backend/internal/service"
)

// StartTrip handles POST /trips.
// The response is the new trip with its seed crossing and an empty summary.
func (s *Server) StartTrip(ctx context.Context, req gen.StartTripRequestObject) (gen.StartTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.StartTrip422JSONResponse(requestBody("request body is required")), nil
	}

	log, err := s.trips.Start(ctx, userID, requestToStartTrip(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.StartTrip404JSONResponse(notFoundBody("vehicle not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.StartTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	// A single crossing defines no interval, so the summary is empty.
	return gen.StartTrip201JSONResponse(tripDetailToResponse(log, []domain.StateMileage{})), nil
}

// ListTrips handles GET /trips.
// Supports ?status=active|completed plus ?page= and ?limit=.
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	var filter domain.TripFilter
	if req.Params.Status != nil {
		status := domain.TripStatus(*req.Params.Status)
		filter.Status = &status
	}
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	trips, total, err := s.trips.List(ctx, userID, filter, params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListTrips422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		Data:       data,
		Pagination: gen.Pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	}, nil
}

// GetTrip handles GET /trips/{tripId}.
// The trip's per-state mileage is computed from the crossings just loaded.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.trips.Get(ctx, userID, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}
	entries, err := mileage.Aggregate(log.Crossings)
	if err != nil {
		return nil, err
	}
	return gen.GetTrip200JSONResponse(tripDetailToResponse(log, entries)), nil
}

// DeleteTrip handles DELETE /trips/{tripId}. Crossings are removed with the trip.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.Delete(ctx, userID, req.TripId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}
	return gen.DeleteTrip204Response{}, nil
}

// EndTrip handles POST /trips/{tripId}/end. The body is optional.
func (s *Server) EndTrip(ctx context.Context, req gen.EndTripRequestObject) (gen.EndTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	var endDate *time.Time
	if req.Body != nil && req.Body.EndDate != nil {
		d := req.Body.EndDate.Time
		endDate = &d
	}

	trip, err := s.trips.End(ctx, userID, req.TripId, endDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.EndTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.EndTrip409JSONResponse(conflictBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.EndTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.EndTrip200JSONResponse(tripToResponse(trip)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToStartTrip converts a StartTripRequest body into service input.
// Required-field checks happen in the service.
func requestToStartTrip(body gen.StartTripRequest) service.StartTripInput {
	in := service.StartTripInput{
		VehicleID: body.VehicleId,
		State:     body.State,
		Odometer:  body.Odometer,
		StartDate: body.StartDate.Time,
	}
	if body.StateName != nil {
		in.StateName = *body.StateName
	}
	if body.Notes != nil {
		in.Notes = *body.Notes
	}
	return in
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	resp := gen.Trip{
		Id:        t.ID,
		VehicleId: t.VehicleID,
		Status:    gen.TripStatus(t.Status),
		StartDate: openapi_types.Date{Time: t.StartDate},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	if t.EndDate != nil {
		ed := openapi_types.Date{Time: *t.EndDate}
		resp.EndDate = &ed
	}
	return resp
}

func tripDetailToResponse(log domain.TripLog, entries []domain.StateMileage) gen.TripDetail {
	crossings := make([]gen.Crossing, len(log.Crossings))
	for i, c := range log.Crossings {
		crossings[i] = crossingToResponse(c)
	}
	return gen.TripDetail{
		Trip:      tripToResponse(log.Trip),
		Crossings: crossings,
		Mileage:   summaryToResponse(entries),
	}
}
