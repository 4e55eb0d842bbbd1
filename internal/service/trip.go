// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// and mail calls. No SQL and no SMTP lives here; services depend on the
// repo interfaces and the Mailer interface, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/mail"
	"github.com/plannerhq/backend/internal/repo"
)

// Mailer is the mail collaborator the workflow engine depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets service
// tests inject a recording fake without an SMTP server.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// mailSendTimeout bounds each individual send during the confirmation
// fan-out. A timed-out send counts as a failed send.
const mailSendTimeout = 10 * time.Second

// TripService implements the trip lifecycle: creation with invites,
// confirmation with the mail fan-out, updates, and read projections.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	from         mail.Address
	apiBaseURL   string
	webBaseURL   string
}

// NewTripService constructs a TripService. apiBaseURL and webBaseURL are
// the public base URLs embedded in confirmation links and redirects; both
// are used without a trailing slash.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, from mail.Address, apiBaseURL, webBaseURL string) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		from:         from,
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		webBaseURL:   strings.TrimRight(webBaseURL, "/"),
	}
}

// CreateTripInput carries the fields of a trip creation request.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// Create validates and persists a new trip together with its initial
// participant set: the owner (confirmed) plus one unconfirmed participant
// per invited email. It then mails a confirmation request to the owner and
// an invitation to every invited address.
//
// Mail failures propagate to the caller; the trip and its participants are
// already committed at that point and are not rolled back.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := validateDestination(in.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := validateTripDates(in.StartsAt, in.EndsAt); err != nil {
		return domain.Trip{}, err
	}

	participants := make([]domain.Participant, 0, len(in.EmailsToInvite)+1)
	participants = append(participants, domain.Participant{
		Name:        in.OwnerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range in.EmailsToInvite {
		participants = append(participants, domain.Participant{Email: email})
	}

	trip := domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}
	created, err := s.trips.CreateWithParticipants(ctx, trip, participants)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	confirmationLink := s.tripConfirmationLink(created.ID)

	msg, err := mail.TripConfirmation(s.from, in.OwnerEmail, created.Destination, in.OwnerName, created.StartsAt, created.EndsAt, confirmationLink)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: send owner mail: %w", err)
	}

	for _, email := range in.EmailsToInvite {
		msg, err := mail.TripInvitation(s.from, email, created.Destination, in.OwnerName, created.StartsAt, created.EndsAt, confirmationLink)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: send invite to %s: %w", email, err)
		}
	}

	return created, nil
}

// Confirm transitions a trip to confirmed and fans out one
// confirmation-request mail per non-owner participant. It returns the
// redirect target for the trip's web page.
//
// Confirming an already-confirmed trip is an idempotent no-op: the same
// redirect target comes back and no mail is sent. The confirmed flag is
// persisted before any mail goes out, so a retry after a partial mail
// failure takes the no-op path instead of re-sending everything.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (string, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	target := s.tripPageURL(id)
	if trip.IsConfirmed {
		return target, nil
	}

	if err := s.trips.MarkConfirmed(ctx, id); err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	invitees, err := s.participants.ListNonOwners(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	if err := s.sendParticipantConfirmations(ctx, trip, invitees); err != nil {
		// The trip stays confirmed; the caller sees the mail failure.
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	return target, nil
}

// sendParticipantConfirmations mails every invitee concurrently. Each send
// gets its own timeout, every send is attempted regardless of the others,
// and all failures are reported together.
func (s *TripService) sendParticipantConfirmations(ctx context.Context, trip domain.Trip, invitees []domain.Participant) error {
	errs := make([]error, len(invitees))

	var wg sync.WaitGroup
	for i, p := range invitees {
		i, p := i, p
		wg.Add(1)
		go func() {
			defer wg.Done()

			msg, err := mail.ParticipantConfirmation(s.from, p.Email, trip.Destination, trip.StartsAt, trip.EndsAt, s.participantConfirmationLink(p.ID))
			if err != nil {
				errs[i] = err
				return
			}

			sendCtx, cancel := context.WithTimeout(ctx, mailSendTimeout)
			defer cancel()

			if err := s.mailer.Send(sendCtx, msg); err != nil {
				errs[i] = fmt.Errorf("send to %s: %w", p.Email, err)
			}
		}()
	}
	wg.Wait()

	return multierr.Combine(errs...)
}

// Update validates the same date rules as creation and persists the new
// destination and date window. Existing activities are not re-validated
// against the new window.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateDestination(trip.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := validateTripDates(trip.StartsAt, trip.EndsAt); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// GetDetails returns a single trip with its participants attached.
func (s *TripService) GetDetails(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetWithParticipants(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetDetails: %w", err)
	}
	return result, nil
}

// List returns all trips with participants attached.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

func (s *TripService) tripConfirmationLink(id uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s/confirm", s.apiBaseURL, id)
}

func (s *TripService) participantConfirmationLink(id uuid.UUID) string {
	return fmt.Sprintf("%s/participants/%s/confirm", s.apiBaseURL, id)
}

func (s *TripService) tripPageURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s", s.webBaseURL, id)
}

// validateDestination enforces the minimum destination length shared by
// Create and Update.
func validateDestination(destination string) error {
	if len(strings.TrimSpace(destination)) < 4 {
		return fmt.Errorf("%w: destination must be at least 4 characters", domain.ErrValidation)
	}
	return nil
}

// validateTripDates enforces the date-window rules shared by Create and
// Update: the trip must not start in the past and must not end before it
// starts. These hold at validation time only; they are not re-checked
// later in the trip's life.
func validateTripDates(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return fmt.Errorf("%w: starts_at and ends_at are required", domain.ErrValidation)
	}
	if startsAt.Before(time.Now()) {
		return fmt.Errorf("%w: trip must not start in the past", domain.ErrInvalidDateRange)
	}
	if endsAt.Before(startsAt) {
		return fmt.Errorf("%w: trip must not end before it starts", domain.ErrInvalidDateRange)
	}
	return nil
}
