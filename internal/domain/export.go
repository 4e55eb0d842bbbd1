package domain

// TripExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per participant, with trip
// fields repeated for every participant on that trip. Trips with no
// participants yield one row with empty participant fields.
type TripExportRow struct {
	// Trip fields, repeated for every participant on the trip.
	TripID        string
	Destination   string
	StartsAt      string // RFC 3339 timestamp
	EndsAt        string // RFC 3339 timestamp
	TripConfirmed bool

	// Participant fields, zero values when the trip has no participants.
	ParticipantName      string
	ParticipantEmail     string
	ParticipantIsOwner   bool
	ParticipantConfirmed bool
}
