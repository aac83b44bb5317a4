package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Crossing marks the odometer reading at the moment a vehicle enters a state
// during a trip. The first crossing of a trip (the seed) records the starting
// state and odometer.
type Crossing struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	State     string // jurisdiction code, e.g. "TX"
	StateName string // display name, e.g. "Texas"
	Odometer  int64
	CrossedAt time.Time
	CreatedAt time.Time
}

// ValidateNextCrossing checks that next may follow prev on the same trip.
// A nil prev means next is the first crossing and is always accepted.
// Otherwise the odometer must strictly increase; the error names the
// conflicting prior reading so the user can correct the entry.
func ValidateNextCrossing(prev *Crossing, next Crossing) error {
	if prev == nil {
		return nil
	}
	if next.Odometer <= prev.Odometer {
		return fmt.Errorf("%w: odometer %d must be greater than previous crossing odometer %d",
			ErrValidation, next.Odometer, prev.Odometer)
	}
	return nil
}
