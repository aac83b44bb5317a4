package handler

import (
	"context"
	"errors"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/service"
)

// ListVehicles handles GET /vehicles.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListVehicles(ctx context.Context, req gen.ListVehiclesRequestObject) (gen.ListVehiclesResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	vehicles, total, err := s.vehicles.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Vehicle, len(vehicles))
	for i, v := range vehicles {
		data[i] = vehicleToResponse(v)
	}
	return gen.ListVehicles200JSONResponse{
		Data:       data,
		Pagination: gen.Pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	}, nil
}

// CreateVehicle handles POST /vehicles.
func (s *Server) CreateVehicle(ctx context.Context, req gen.CreateVehicleRequestObject) (gen.CreateVehicleResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.CreateVehicle422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.vehicles.Create(ctx, userID, requestToVehicleInput(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateVehicle422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateVehicle201JSONResponse(vehicleToResponse(created)), nil
}

// GetVehicle handles GET /vehicles/{vehicleId}.
func (s *Server) GetVehicle(ctx context.Context, req gen.GetVehicleRequestObject) (gen.GetVehicleResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByID(ctx, userID, req.VehicleId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetVehicle404JSONResponse(notFoundBody("vehicle not found")), nil
		}
		return nil, err
	}
	return gen.GetVehicle200JSONResponse(vehicleToResponse(v)), nil
}

// UpdateVehicle handles PUT /vehicles/{vehicleId}.
func (s *Server) UpdateVehicle(ctx context.Context, req gen.UpdateVehicleRequestObject) (gen.UpdateVehicleResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.UpdateVehicle422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.vehicles.Update(ctx, userID, req.VehicleId, requestToVehicleInput(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateVehicle404JSONResponse(notFoundBody("vehicle not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateVehicle422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateVehicle200JSONResponse(vehicleToResponse(updated)), nil
}

// DeleteVehicle handles DELETE /vehicles/{vehicleId}.
// A vehicle that still has trips cannot be deleted (409).
func (s *Server) DeleteVehicle(ctx context.Context, req gen.DeleteVehicleRequestObject) (gen.DeleteVehicleResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.vehicles.Delete(ctx, userID, req.VehicleId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteVehicle404JSONResponse(notFoundBody("vehicle not found")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.DeleteVehicle409JSONResponse(conflictBody(err)), nil
		}
		return nil, err
	}
	return gen.DeleteVehicle204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

func requestToVehicleInput(body gen.VehicleRequest) service.VehicleInput {
	in := service.VehicleInput{UnitNumber: body.UnitNumber}
	if body.Name != nil {
		in.Name = *body.Name
	}
	if body.Vin != nil {
		in.VIN = *body.Vin
	}
	return in
}

// vehicleToResponse converts a domain.Vehicle into the generated gen.Vehicle type.
func vehicleToResponse(v domain.Vehicle) gen.Vehicle {
	resp := gen.Vehicle{
		Id:         v.ID,
		UnitNumber: v.UnitNumber,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
	if v.Name != "" {
		resp.Name = &v.Name
	}
	if v.VIN != "" {
		resp.Vin = &v.VIN
	}
	return resp
}
