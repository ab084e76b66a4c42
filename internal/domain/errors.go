package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNoDaySelected is returned when an activity add targets a trip whose
// day-plan collection is empty, so not even the first-day fallback can
// apply. The edit is dropped rather than guessed; handlers should map
// this to HTTP 422.
var ErrNoDaySelected = errors.New("no day selected")
