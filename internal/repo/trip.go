// Package repo contains all database access logic for the Haul Ledger API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here; only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/haulledger/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// Every read and write is scoped by userID: a trip owned by someone else
// behaves exactly like a trip that does not exist.
type TripRepo interface {
	// CreateWithSeed inserts a trip and its seed crossing in a single statement
	// and returns both persisted records.
	CreateWithSeed(ctx context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error)

	// GetByID retrieves a single trip. Returns domain.ErrNotFound if no trip
	// with that ID exists for the user.
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of the user's trips ordered by start_date
	// descending, plus the total number of trips matching the filter.
	ListPaged(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Complete marks an active trip completed with the given end date.
	// Returns domain.ErrNotFound if no active trip with that ID exists for the user.
	Complete(ctx context.Context, userID, id uuid.UUID, endDate time.Time) (domain.Trip, error)

	// Delete removes a trip and, by cascade, all its crossings.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, user_id, vehicle_id, status, start_date, end_date, notes, created_at, updated_at`

// CreateWithSeed uses two data-modifying CTEs so the trip and its seed
// crossing are committed (or rejected) together without an explicit transaction.
func (r *pgTripRepo) CreateWithSeed(ctx context.Context, trip domain.Trip, seed domain.Crossing) (domain.Trip, domain.Crossing, error) {
	const q = `
		WITH t AS (
			INSERT INTO trips (user_id, vehicle_id, status, start_date, notes)
			VALUES (@user_id, @vehicle_id, 'active', @start_date, @notes)
			RETURNING ` + tripColumns + `
		), c AS (
			INSERT INTO crossings (trip_id, state, state_name, odometer, crossed_at)
			SELECT t.id, @state::text, @state_name::text, @odometer::bigint, @crossed_at::timestamptz
			FROM t
			RETURNING ` + crossingColumns + `
		)
		SELECT t.id, t.user_id, t.vehicle_id, t.status, t.start_date, t.end_date, t.notes, t.created_at, t.updated_at,
		       c.id, c.trip_id, c.state, c.state_name, c.odometer, c.crossed_at, c.created_at
		FROM t CROSS JOIN c`

	args := pgx.NamedArgs{
		"user_id":    trip.UserID,
		"vehicle_id": trip.VehicleID,
		"start_date": trip.StartDate,
		"notes":      trip.Notes,
		"state":      seed.State,
		"state_name": seed.StateName,
		"odometer":   seed.Odometer,
		"crossed_at": seed.CrossedAt,
	}

	var (
		t domain.Trip
		c domain.Crossing
	)
	tripDest, finishTrip := tripScanDest(&t)
	crossingDest, finishCrossing := crossingScanDest(&c)

	err := r.db.QueryRow(ctx, q, args).Scan(append(tripDest, crossingDest...)...)
	if err != nil {
		return domain.Trip{}, domain.Crossing{}, fmt.Errorf("repo.TripRepo.CreateWithSeed: %w", mapPgError(err))
	}
	finishTrip()
	finishCrossing()
	return t, c, nil
}

// GetByID retrieves a trip by primary key, scoped to its owner.
func (r *pgTripRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips (most recent start first) and the total count.
func (r *pgTripRepo) ListPaged(ctx context.Context, userID uuid.UUID, f domain.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `
		SELECT count(*)
		FROM trips
		WHERE user_id = @user_id
		  AND (@status::text IS NULL OR status = @status::text)`

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		  AND (@status::text IS NULL OR status = @status::text)
		ORDER BY start_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	var status *string // nil becomes NULL, matching every status
	if f.Status != nil {
		s := string(*f.Status)
		status = &s
	}

	args := pgx.NamedArgs{
		"user_id": userID,
		"status":  status,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	return trips, total, nil
}

// Complete flips an active trip to completed and stamps its end date.
func (r *pgTripRepo) Complete(ctx context.Context, userID, id uuid.UUID, endDate time.Time) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET status     = 'completed',
		    end_date   = @end_date,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id AND status = 'active'
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":       id,
		"user_id":  userID,
		"end_date": endDate,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Complete: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key, scoped to its owner.
func (r *pgTripRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// tripScanDest returns scan destinations for tripColumns and a func that
// copies the pgtype intermediates into t once Scan has succeeded.
func tripScanDest(t *domain.Trip) ([]any, func()) {
	var (
		id, userID, vehicleID pgtype.UUID
		status                string
		startDate, endDate    pgtype.Date
	)
	dest := []any{&id, &userID, &vehicleID, &status, &startDate, &endDate, &t.Notes, &t.CreatedAt, &t.UpdatedAt}
	return dest, func() {
		t.ID = uuid.UUID(id.Bytes)
		t.UserID = uuid.UUID(userID.Bytes)
		t.VehicleID = uuid.UUID(vehicleID.Bytes)
		t.Status = domain.TripStatus(status)
		t.StartDate = startDate.Time
		if endDate.Valid {
			ed := endDate.Time
			t.EndDate = &ed
		}
	}
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and nullable end_date conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	dest, finish := tripScanDest(&t)
	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}
	finish()
	return t, nil
}
