package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripLog is an immutable snapshot of a trip together with its crossings,
// ordered ascending by CrossedAt. Every command method returns a new snapshot
// and leaves the receiver untouched, so callers can validate a change against
// the current state before persisting it.
type TripLog struct {
	Trip      Trip
	Crossings []Crossing
}

// StartTrip builds the log of a newly started trip: status active, no end
// date, and seed as its only crossing.
func StartTrip(trip Trip, seed Crossing) (TripLog, error) {
	if trip.VehicleID == uuid.Nil {
		return TripLog{}, fmt.Errorf("%w: vehicle is required", ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return TripLog{}, fmt.Errorf("%w: start_date is required", ErrValidation)
	}
	if seed.State == "" {
		return TripLog{}, fmt.Errorf("%w: state is required", ErrValidation)
	}
	if seed.Odometer < 0 {
		return TripLog{}, fmt.Errorf("%w: odometer must not be negative", ErrValidation)
	}
	trip.Status = TripActive
	trip.EndDate = nil
	seed.TripID = trip.ID
	return TripLog{Trip: trip, Crossings: []Crossing{seed}}, nil
}

// Seed returns the first crossing of the trip.
func (l TripLog) Seed() (Crossing, bool) {
	if len(l.Crossings) == 0 {
		return Crossing{}, false
	}
	return l.Crossings[0], true
}

// Last returns the most recent crossing of the trip.
func (l TripLog) Last() (Crossing, bool) {
	if len(l.Crossings) == 0 {
		return Crossing{}, false
	}
	return l.Crossings[len(l.Crossings)-1], true
}

// AppendCrossing returns a new log with c appended.
// The trip must be active and c's odometer must exceed the last crossing's.
func (l TripLog) AppendCrossing(c Crossing) (TripLog, error) {
	if l.Trip.Status != TripActive {
		return TripLog{}, fmt.Errorf("%w: trip is not active", ErrConflict)
	}
	var prev *Crossing
	if last, ok := l.Last(); ok {
		prev = &last
	}
	if err := ValidateNextCrossing(prev, c); err != nil {
		return TripLog{}, err
	}
	c.TripID = l.Trip.ID

	next := l.clone()
	next.Crossings = append(next.Crossings, c)
	return next, nil
}

// RemoveCrossing returns a new log without the crossing identified by id.
// The seed crossing anchors the trip and cannot be removed on its own, and
// crossings of a completed trip are permanent history.
func (l TripLog) RemoveCrossing(id uuid.UUID) (TripLog, error) {
	if l.Trip.Status != TripActive {
		return TripLog{}, fmt.Errorf("%w: trip is not active", ErrConflict)
	}
	for i, c := range l.Crossings {
		if c.ID != id {
			continue
		}
		if i == 0 {
			return TripLog{}, fmt.Errorf("%w: the starting crossing cannot be deleted", ErrConflict)
		}
		next := l.clone()
		next.Crossings = append(next.Crossings[:i], next.Crossings[i+1:]...)
		return next, nil
	}
	return TripLog{}, fmt.Errorf("crossing %s: %w", id, ErrNotFound)
}

// End returns a new log with the trip completed on endDate.
func (l TripLog) End(endDate time.Time) (TripLog, error) {
	if l.Trip.Status != TripActive {
		return TripLog{}, fmt.Errorf("%w: trip is already completed", ErrConflict)
	}
	if endDate.Before(l.Trip.StartDate) {
		return TripLog{}, fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}
	next := l.clone()
	next.Trip.Status = TripCompleted
	next.Trip.EndDate = &endDate
	return next, nil
}

// clone copies the crossing slice so appends and removals on the copy never
// alias the receiver's backing array.
func (l TripLog) clone() TripLog {
	crossings := make([]Crossing, len(l.Crossings), len(l.Crossings)+1)
	copy(crossings, l.Crossings)
	trip := l.Trip
	if l.Trip.EndDate != nil {
		ed := *l.Trip.EndDate
		trip.EndDate = &ed
	}
	return TripLog{Trip: trip, Crossings: crossings}
}
