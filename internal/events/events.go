// Package events carries change notifications between the services that
// mutate trips and the components that react to them: the mileage summary
// cache and the /events websocket stream.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind names what happened.
type Kind string

const (
	TripStarted     Kind = "trip.started"
	TripEnded       Kind = "trip.ended"
	TripDeleted     Kind = "trip.deleted"
	CrossingAdded   Kind = "crossing.added"
	CrossingDeleted Kind = "crossing.deleted"
)

// Event is a single change to one user's trip data.
// CrossingID is set only for crossing events.
type Event struct {
	Kind       Kind       `json:"kind"`
	UserID     uuid.UUID  `json:"user_id"`
	TripID     uuid.UUID  `json:"trip_id"`
	CrossingID *uuid.UUID `json:"crossing_id,omitempty"`
	At         time.Time  `json:"at"`
}

// Handler reacts to an event. Handlers run on the publisher's goroutine for
// local delivery and must not block for long.
type Handler func(ctx context.Context, e Event)

// Bus publishes events to every subscriber.
type Bus interface {
	Publish(ctx context.Context, e Event) error
	// Subscribe registers h and returns a function that removes it.
	Subscribe(h Handler) (unsubscribe func())
}
