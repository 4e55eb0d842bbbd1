package domain

import (
	"github.com/google/uuid"
)

// Participant is a person invited to (or owning) a trip.
// The owner is created confirmed; invitees start unconfirmed and flip to
// confirmed exactly once via their confirmation link. Name may be empty
// for invitees until they confirm; confirmation overwrites it with the
// name they supply.
//
// Email uniqueness is deliberately not enforced: the same address may be
// invited to many trips, or twice to the same one.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
}
