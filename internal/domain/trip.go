// Package domain contains the core data types for the Haul Ledger mileage API.
// This package depends only on google/uuid and is imported by every other
// internal package (repo, service, handler, mileage).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip. The only transition is
// active → completed.
type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TripStatus) Valid() bool {
	return s == TripActive || s == TripCompleted
}

// Trip represents a contiguous driving period for one vehicle.
// Crossings belong to a trip; a trip is owned by exactly one user.
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	Status    TripStatus `json:"status"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil while the trip is active
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TripFilter narrows a trip listing. A nil Status lists trips in every state.
type TripFilter struct {
	Status *TripStatus
}
