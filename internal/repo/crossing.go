package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/haulledger/backend/internal/domain"
)

// CrossingRepo defines the persistence operations for Crossings.
// Ownership is enforced one level up: callers verify the parent trip belongs
// to the user before touching its crossings.
type CrossingRepo interface {
	// Create inserts a new crossing and returns the persisted record.
	Create(ctx context.Context, c domain.Crossing) (domain.Crossing, error)

	// ListByTripID returns all crossings for a trip ordered by crossed_at ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Crossing, error)

	// ListCompletedByUser returns the crossings of every completed trip owned by
	// the user, grouped by trip and ordered by crossed_at within each trip.
	ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([][]domain.Crossing, error)

	// Delete removes a crossing by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no crossing with that ID exists under that trip.
	Delete(ctx context.Context, tripID, crossingID uuid.UUID) error
}

// pgCrossingRepo is the Postgres implementation of CrossingRepo.
type pgCrossingRepo struct {
	db db
}

// NewCrossingRepo constructs a CrossingRepo backed by the provided db connection.
func NewCrossingRepo(db db) CrossingRepo {
	return &pgCrossingRepo{db: db}
}

const crossingColumns = `id, trip_id, state, state_name, odometer, crossed_at, created_at`

func (r *pgCrossingRepo) Create(ctx context.Context, c domain.Crossing) (domain.Crossing, error) {
	const q = `
		INSERT INTO crossings (trip_id, state, state_name, odometer, crossed_at)
		VALUES (@trip_id, @state, @state_name, @odometer, @crossed_at)
		RETURNING ` + crossingColumns

	args := pgx.NamedArgs{
		"trip_id":    c.TripID,
		"state":      c.State,
		"state_name": c.StateName,
		"odometer":   c.Odometer,
		"crossed_at": c.CrossedAt,
	}

	result, err := scanCrossing(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Crossing{}, fmt.Errorf("repo.CrossingRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgCrossingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Crossing, error) {
	const q = `
		SELECT ` + crossingColumns + `
		FROM crossings
		WHERE trip_id = @trip_id
		ORDER BY crossed_at, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.CrossingRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	crossings := []domain.Crossing{}
	for rows.Next() {
		c, err := scanCrossing(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CrossingRepo.ListByTripID: scan: %w", err)
		}
		crossings = append(crossings, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CrossingRepo.ListByTripID: rows: %w", err)
	}
	return crossings, nil
}

// ListCompletedByUser reads every completed trip's crossings in one query and
// splits the ordered result on trip_id boundaries.
func (r *pgCrossingRepo) ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([][]domain.Crossing, error) {
	const q = `
		SELECT c.id, c.trip_id, c.state, c.state_name, c.odometer, c.crossed_at, c.created_at
		FROM crossings c
		JOIN trips t ON t.id = c.trip_id
		WHERE t.user_id = @user_id AND t.status = 'completed'
		ORDER BY t.start_date, c.trip_id, c.crossed_at, c.created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.CrossingRepo.ListCompletedByUser: %w", err)
	}
	defer rows.Close()

	trips := [][]domain.Crossing{}
	for rows.Next() {
		c, err := scanCrossing(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CrossingRepo.ListCompletedByUser: scan: %w", err)
		}
		if n := len(trips); n == 0 || trips[n-1][0].TripID != c.TripID {
			trips = append(trips, nil)
		}
		trips[len(trips)-1] = append(trips[len(trips)-1], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CrossingRepo.ListCompletedByUser: rows: %w", err)
	}
	return trips, nil
}

func (r *pgCrossingRepo) Delete(ctx context.Context, tripID, crossingID uuid.UUID) error {
	const q = `DELETE FROM crossings WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": crossingID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.CrossingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CrossingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// crossingScanDest mirrors tripScanDest for crossingColumns.
func crossingScanDest(c *domain.Crossing) ([]any, func()) {
	var id, tripID pgtype.UUID
	dest := []any{&id, &tripID, &c.State, &c.StateName, &c.Odometer, &c.CrossedAt, &c.CreatedAt}
	return dest, func() {
		c.ID = uuid.UUID(id.Bytes)
		c.TripID = uuid.UUID(tripID.Bytes)
	}
}

// scanCrossing maps a single database row into a domain.Crossing.
func scanCrossing(s scanner) (domain.Crossing, error) {
	var c domain.Crossing
	dest, finish := crossingScanDest(&c)
	if err := s.Scan(dest...); err != nil {
		return domain.Crossing{}, mapPgError(err)
	}
	finish()
	return c, nil
}
