package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// tripMailData is the template input shared by all three message kinds.
type tripMailData struct {
	Destination      string
	OwnerName        string
	StartsAt         string
	EndsAt           string
	ConfirmationLink string
}

var tripConfirmationTmpl = template.Must(template.New("trip_confirmation").Parse(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
	<h2>Confirm your trip to <strong>{{.Destination}}</strong></h2>
	<p>Hello {{.OwnerName}},</p>
	<p>You requested a trip to <strong>{{.Destination}}</strong> from
		<strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
	<p>To confirm the trip, click the link below:</p>
	<p><a href="{{.ConfirmationLink}}">Confirm trip</a></p>
	<p>If you did not request this trip, just ignore this email.</p>
</div>`))

var tripInvitationTmpl = template.Must(template.New("trip_invitation").Parse(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
	<h2>You have been invited to a trip to <strong>{{.Destination}}</strong></h2>
	<p>{{.OwnerName}} invited you to a trip to <strong>{{.Destination}}</strong> from
		<strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
	<p>To confirm the trip, click the link below:</p>
	<p><a href="{{.ConfirmationLink}}">Confirm trip</a></p>
	<p>If you don't know what this is about, just ignore this email.</p>
</div>`))

var participantConfirmationTmpl = template.Must(template.New("participant_confirmation").Parse(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
	<p>You have been invited to join a trip to <strong>{{.Destination}}</strong> from
		<strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
	<p>To confirm your presence on the trip, click the link below:</p>
	<p><a href="{{.ConfirmationLink}}">Confirm presence</a></p>
	<p>If you don't know what this is about, just ignore this email.</p>
</div>`))

// TripConfirmation composes the message sent to the trip owner right after
// creation. confirmationLink points at the trip confirmation endpoint.
func TripConfirmation(from Address, to, destination, ownerName string, startsAt, endsAt time.Time, confirmationLink string) (Message, error) {
	html, err := render(tripConfirmationTmpl, tripMailData{
		Destination:      destination,
		OwnerName:        ownerName,
		StartsAt:         formatDate(startsAt),
		EndsAt:           formatDate(endsAt),
		ConfirmationLink: confirmationLink,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Confirm your trip to %s", destination),
		HTML:    html,
	}, nil
}

// TripInvitation composes the message sent to each invited email at trip
// creation. It carries the same trip confirmation link as the owner mail.
func TripInvitation(from Address, to, destination, ownerName string, startsAt, endsAt time.Time, confirmationLink string) (Message, error) {
	html, err := render(tripInvitationTmpl, tripMailData{
		Destination:      destination,
		OwnerName:        ownerName,
		StartsAt:         formatDate(startsAt),
		EndsAt:           formatDate(endsAt),
		ConfirmationLink: confirmationLink,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Trip invitation: %s", destination),
		HTML:    html,
	}, nil
}

// ParticipantConfirmation composes the message sent to a non-owner
// participant when the trip is confirmed. confirmationLink points at the
// participant confirmation endpoint.
func ParticipantConfirmation(from Address, to, destination string, startsAt, endsAt time.Time, confirmationLink string) (Message, error) {
	html, err := render(participantConfirmationTmpl, tripMailData{
		Destination:      destination,
		StartsAt:         formatDate(startsAt),
		EndsAt:           formatDate(endsAt),
		ConfirmationLink: confirmationLink,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Confirm your presence on the trip to %s", destination),
		HTML:    html,
	}, nil
}

func render(tmpl *template.Template, data tripMailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mail: render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// formatDate renders a timestamp the way the emails show dates.
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
