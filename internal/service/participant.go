package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

// ParticipantService implements the participant confirmation transition
// and the participant read projection.
type ParticipantService struct {
	participants repo.ParticipantRepo
}

// NewParticipantService constructs a ParticipantService backed by the
// provided ParticipantRepo.
func NewParticipantService(participants repo.ParticipantRepo) *ParticipantService {
	return &ParticipantService{participants: participants}
}

// Confirm marks a participant as confirmed and overwrites the stored name
// with the supplied one; invitees are created from a bare email address,
// so confirmation is when they introduce themselves.
//
// The supplied email must exactly match the stored one (case-sensitive);
// a mismatch fails with domain.ErrEmailMismatch and changes nothing.
// Confirming an already-confirmed participant succeeds and only rewrites
// the same fields.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID, email, name string) (domain.Participant, error) {
	participant, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}

	if participant.Email != email {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", domain.ErrEmailMismatch)
	}

	result, err := s.participants.Confirm(ctx, id, name)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return result, nil
}

// GetByID returns a single participant by ID.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	result, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return result, nil
}
