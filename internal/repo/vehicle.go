package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/haulledger/backend/internal/domain"
)

// VehicleRepo defines the persistence operations for Vehicles.
// All operations are scoped by the owning user.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the persisted record.
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a vehicle. Returns domain.ErrNotFound if the user has
	// no vehicle with that ID.
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error)

	// ListPaged returns one page of the user's vehicles ordered by unit number,
	// plus the total count.
	ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error)

	// Update overwrites the mutable fields of a vehicle.
	// Returns domain.ErrNotFound if the vehicle does not exist for the user.
	Update(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// Delete removes a vehicle. Returns domain.ErrNotFound if it does not exist,
	// or domain.ErrConflict if trips still reference it.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

const vehicleColumns = `id, user_id, unit_number, name, vin, created_at, updated_at`

func (r *pgVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (user_id, unit_number, name, vin)
		VALUES (@user_id, @unit_number, @name, @vin)
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"user_id":     v.UserID,
		"unit_number": v.UnitNumber,
		"name":        v.Name,
		"vin":         v.VIN,
	}

	result, err := scanVehicle(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Vehicle, error) {
	const q = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = @id AND user_id = @user_id`

	result, err := scanVehicle(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Vehicle, int64, error) {
	const countQ = `SELECT count(*) FROM vehicles WHERE user_id = @user_id`
	const q = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE user_id = @user_id
		ORDER BY unit_number, created_at
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{"user_id": userID, "limit": p.Limit, "offset": p.Offset()}

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.VehicleRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.VehicleRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.VehicleRepo.ListPaged: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.VehicleRepo.ListPaged: rows: %w", err)
	}
	return vehicles, total, nil
}

func (r *pgVehicleRepo) Update(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		UPDATE vehicles
		SET unit_number = @unit_number,
		    name        = @name,
		    vin         = @vin,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"id":          v.ID,
		"user_id":     v.UserID,
		"unit_number": v.UnitNumber,
		"name":        v.Name,
		"vin":         v.VIN,
	}

	result, err := scanVehicle(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Update: %w", err)
	}
	return result, nil
}

// Delete relies on the trips.vehicle_id ON DELETE RESTRICT constraint to
// refuse removing a vehicle that still has trips.
func (r *pgVehicleRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM vehicles WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.VehicleRepo.Delete: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VehicleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanVehicle maps a single database row into a domain.Vehicle.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v          domain.Vehicle
		id, userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &v.UnitNumber, &v.Name, &v.VIN, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}
	v.ID = uuid.UUID(id.Bytes)
	v.UserID = uuid.UUID(userID.Bytes)
	return v, nil
}
