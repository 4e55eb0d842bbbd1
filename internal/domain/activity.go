package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled event during a trip. OccursAt must fall inside
// the trip's date window at creation time; updating the trip afterwards
// does not re-validate existing activities.
type Activity struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}
