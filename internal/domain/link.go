package domain

import (
	"github.com/google/uuid"
)

// Link is a URL attached to a trip (booking confirmations, house listings,
// shared documents). Links carry no date semantics.
type Link struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`
	Title  string    `json:"title"`
	URL    string    `json:"url"`
}
