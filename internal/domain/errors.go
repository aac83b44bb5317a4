package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but belongs to another user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing odometer, odometer not greater than the last crossing).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an operation is not allowed in the resource's
// current lifecycle state (e.g. adding a crossing to a completed trip, deleting
// the seed crossing, deleting a vehicle that still has trips).
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")

// ErrPrecondition is returned by the mileage aggregator when it is handed
// crossings that are missing required fields. It signals a programming or
// data error, never a user mistake, so handlers treat it as HTTP 500.
var ErrPrecondition = errors.New("precondition violated")
