package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers map this to a 400 client-error response naming what was missing.
var ErrNotFound = errors.New("not found")

// ErrValidation is the root of the validation error family. Service
// functions return it (or one of the wrapped sentinels below) when input
// fails a business rule. Handlers map the whole family to 400 with a
// single errors.Is check.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange is returned when a trip's starts_at is in the past
// or its ends_at precedes starts_at.
var ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrValidation)

// ErrInvalidActivityDate is returned when an activity's occurs_at falls
// outside the parent trip's [starts_at, ends_at] window.
var ErrInvalidActivityDate = fmt.Errorf("%w: activity date outside trip window", ErrValidation)

// ErrEmailMismatch is returned when a participant confirmation supplies an
// email that does not exactly match the stored one.
var ErrEmailMismatch = fmt.Errorf("%w: email does not match", ErrValidation)
