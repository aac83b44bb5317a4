package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a truck or power unit owned by a user. Trips reference a vehicle.
// UnitNumber is the fleet's own identifier ("Unit 12"); VIN is optional.
type Vehicle struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UnitNumber string
	Name       string
	VIN        string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
