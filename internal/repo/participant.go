package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/plannerhq/backend/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
// Participant rows are created by TripRepo.CreateWithParticipants; this
// repo covers the reads and the single state transition they go through.
type ParticipantRepo interface {
	// GetByID retrieves a single participant by its UUID primary key.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns all participants of a trip, owner first.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// ListNonOwners returns the non-owner participants of a trip, the set
	// that receives confirmation-request mail when the trip is confirmed.
	ListNonOwners(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm sets is_confirmed and overwrites the stored name, returning
	// the updated record. Returns domain.ErrNotFound if the participant
	// does not exist.
	Confirm(ctx context.Context, id uuid.UUID, name string) (domain.Participant, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided
// db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, is_owner, is_confirmed`

// GetByID retrieves a participant by primary key.
func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all participants of a trip, owner first.
func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, email`

	return r.list(ctx, "ListByTripID", q, pgx.NamedArgs{"trip_id": tripID})
}

// ListNonOwners returns the non-owner participants of a trip.
func (r *pgParticipantRepo) ListNonOwners(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id AND is_owner = false
		ORDER BY email`

	return r.list(ctx, "ListNonOwners", q, pgx.NamedArgs{"trip_id": tripID})
}

// Confirm flips the confirmed flag and overwrites the name in one statement.
func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID, name string) (domain.Participant, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true,
		    name         = @name
		WHERE id = @id
		RETURNING ` + participantColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "name": name})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) list(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Participant, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.%s: scan: %w", op, err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.%s: rows: %w", op, err)
	}

	return participants, nil
}

// scanParticipant maps a single database row into a domain.Participant.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &p.Name, &p.Email, &p.IsOwner, &p.IsConfirmed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	return p, nil
}
