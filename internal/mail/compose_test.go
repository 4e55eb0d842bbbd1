package mail_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/mail"
)

var (
	testFrom     = mail.Address{Name: "Trip Planner", Email: "noreply@example.com"}
	testStartsAt = time.Date(2027, 6, 1, 9, 0, 0, 0, time.UTC)
	testEndsAt   = time.Date(2027, 6, 15, 18, 0, 0, 0, time.UTC)
)

func TestTripConfirmation(t *testing.T) {
	msg, err := mail.TripConfirmation(testFrom, "alice@example.com",
		"Lisbon, Portugal", "Alice", testStartsAt, testEndsAt,
		"https://api.example.com/trips/42/confirm")

	require.NoError(t, err)
	assert.Equal(t, testFrom, msg.From)
	assert.Equal(t, []string{"alice@example.com"}, msg.To)
	assert.Equal(t, "Confirm your trip to Lisbon, Portugal", msg.Subject)

	assert.Contains(t, msg.HTML, "Hello Alice")
	assert.Contains(t, msg.HTML, "June 1, 2027")
	assert.Contains(t, msg.HTML, "June 15, 2027")
	assert.Contains(t, msg.HTML, `href="https://api.example.com/trips/42/confirm"`)
}

func TestTripInvitation(t *testing.T) {
	msg, err := mail.TripInvitation(testFrom, "bob@example.com",
		"Lisbon, Portugal", "Alice", testStartsAt, testEndsAt,
		"https://api.example.com/trips/42/confirm")

	require.NoError(t, err)
	assert.Equal(t, []string{"bob@example.com"}, msg.To)
	assert.Equal(t, "Trip invitation: Lisbon, Portugal", msg.Subject)
	assert.Contains(t, msg.HTML, "Alice invited you")
	assert.Contains(t, msg.HTML, `href="https://api.example.com/trips/42/confirm"`)
}

func TestParticipantConfirmation(t *testing.T) {
	msg, err := mail.ParticipantConfirmation(testFrom, "bob@example.com",
		"Lisbon, Portugal", testStartsAt, testEndsAt,
		"https://api.example.com/participants/7/confirm")

	require.NoError(t, err)
	assert.Equal(t, []string{"bob@example.com"}, msg.To)
	assert.Equal(t, "Confirm your presence on the trip to Lisbon, Portugal", msg.Subject)
	assert.Contains(t, msg.HTML, "Confirm presence")
	assert.Contains(t, msg.HTML, `href="https://api.example.com/participants/7/confirm"`)
}

func TestCompose_EscapesHTMLInDestination(t *testing.T) {
	msg, err := mail.TripConfirmation(testFrom, "alice@example.com",
		"<script>alert(1)</script>", "Alice", testStartsAt, testEndsAt,
		"https://api.example.com/trips/42/confirm")

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>", "user input must be escaped")
}
