// Package domain contains the core data types for the trip planner API.
// This package depends on nothing but uuid and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate: a planned journey with a destination
// and a date window. Participants, links, and activities belong to a trip
// and are removed with it.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`

	// Participants is populated only by reads that eager-load the
	// collection (GetWithParticipants, List). Nil otherwise.
	Participants []Participant `json:"participants,omitempty"`
}
