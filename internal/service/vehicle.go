package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/repo"
)

// VehicleInput holds the editable fields of a vehicle. VIN is optional.
type VehicleInput struct {
	UnitNumber string `json:"unit_number" validate:"required,max=50"`
	Name       string `json:"name" validate:"max=100"`
	VIN        string `json:"vin" validate:"omitempty,vin"`
}

// normalize trims whitespace so blank values fail "required" and VINs
// compare case-insensitively.
func (in VehicleInput) normalize() VehicleInput {
	return VehicleInput{
		UnitNumber: strings.TrimSpace(in.UnitNumber),
		Name:       strings.TrimSpace(in.Name),
		VIN:        strings.ToUpper(strings.TrimSpace(in.VIN)),
	}
}

// VehicleService implements business logic for a user's vehicles.
type VehicleService struct {
	repo repo.VehicleRepo
}

// NewVehicleService constructs a VehicleService backed by the provided VehicleRepo.
func NewVehicleService(r repo.VehicleRepo) *VehicleService {
	return &VehicleService{repo: r}
}

// Create validates and persists a new vehicle.
func (s *VehicleService) Create(ctx context.Context, userID uuid.UUID, in VehicleInput) (domain.Vehicle, error) {
	in = in.normalize()
	if err := validateInput(in); err != nil {
		return domain.Vehicle{}, err
	}
	v, err := s.repo.Create(ctx, domain.Vehicle{UserID: userID, UnitNumber: in.UnitNumber, Name: in.Name, VIN: in.VIN})
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Create: %w", err)
	}
	return v, nil
}

// GetByID returns a single vehicle owned by the user.
func (s *VehicleService) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return v, nil
}

// List returns one page of the user's vehicles and the total count.
func (s *VehicleService) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error) {
	vehicles, total, err := s.repo.ListPaged(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	return vehicles, total, nil
}

// Update validates and overwrites an existing vehicle's editable fields.
func (s *VehicleService) Update(ctx context.Context, userID, id uuid.UUID, in VehicleInput) (domain.Vehicle, error) {
	in = in.normalize()
	if err := validateInput(in); err != nil {
		return domain.Vehicle{}, err
	}
	v, err := s.repo.Update(ctx, domain.Vehicle{ID: id, UserID: userID, UnitNumber: in.UnitNumber, Name: in.Name, VIN: in.VIN})
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Update: %w", err)
	}
	return v, nil
}

// Delete removes a vehicle. Returns domain.ErrConflict while trips still reference it.
func (s *VehicleService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	return nil
}
