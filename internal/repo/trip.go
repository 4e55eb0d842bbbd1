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

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// CreateWithParticipants inserts a new trip and all its initial
	// participants as one transaction. It returns the persisted trip with
	// the created participants attached.
	CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// GetWithParticipants retrieves a trip with its full participant
	// collection attached. Returns domain.ErrNotFound if the trip is missing.
	GetWithParticipants(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by starts_at ascending, each with its
	// participant collection attached.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites destination, starts_at, and ends_at of an existing
	// trip and returns the updated record. Returns domain.ErrNotFound if no
	// trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// MarkConfirmed sets is_confirmed on an existing trip.
	// Returns domain.ErrNotFound if the trip does not exist.
	MarkConfirmed(ctx context.Context, id uuid.UUID) error

	// Delete removes a trip by ID; participants, links, and activities go
	// with it (ON DELETE CASCADE). Returns domain.ErrNotFound if it does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, starts_at, ends_at, is_confirmed, created_at`

// CreateWithParticipants inserts the trip row and one participant row per
// entry, all inside a single transaction so a failed participant insert
// leaves no orphan trip behind.
func (r *pgTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: begin: %w", err)
	}
	defer tx.Rollback(ctx) // rollback after commit is a no-op

	const insertTrip = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING ` + tripColumns

	row := tx.QueryRow(ctx, insertTrip, pgx.NamedArgs{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	})
	created, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: insert trip: %w", err)
	}

	const insertParticipant = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
		RETURNING ` + participantColumns

	for _, p := range participants {
		row := tx.QueryRow(ctx, insertParticipant, pgx.NamedArgs{
			"trip_id":      created.ID,
			"name":         p.Name,
			"email":        p.Email,
			"is_owner":     p.IsOwner,
			"is_confirmed": p.IsConfirmed,
		})
		saved, err := scanParticipant(row)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: insert participant: %w", err)
		}
		created.Participants = append(created.Participants, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.CreateWithParticipants: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetWithParticipants retrieves a trip and eager-loads its participants.
func (r *pgTripRepo) GetWithParticipants(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, err
	}

	const q = `SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, email`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": id})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetWithParticipants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetWithParticipants: scan: %w", err)
		}
		trip.Participants = append(trip.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetWithParticipants: rows: %w", err)
	}

	return trip, nil
}

// List returns all trips ordered by starts_at ascending, with participants
// attached. Participants are fetched with a single second query rather
// than one query per trip.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY starts_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	var ids []uuid.UUID
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	if len(trips) == 0 {
		return trips, nil
	}

	const pq = `SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = ANY(@trip_ids)
		ORDER BY is_owner DESC, email`

	prows, err := r.db.Query(ctx, pq, pgx.NamedArgs{"trip_ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: participants: %w", err)
	}
	defer prows.Close()

	byTrip := make(map[uuid.UUID][]domain.Participant)
	for prows.Next() {
		p, err := scanParticipant(prows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan participant: %w", err)
		}
		byTrip[p.TripID] = append(byTrip[p.TripID], p)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: participant rows: %w", err)
	}

	for i := range trips {
		trips[i].Participants = byTrip[trips[i].ID]
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    starts_at   = @starts_at,
		    ends_at     = @ends_at
		WHERE id = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// MarkConfirmed flips the confirmed flag on a trip.
func (r *pgTripRepo) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE trips SET is_confirmed = true WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.MarkConfirmed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.MarkConfirmed: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
