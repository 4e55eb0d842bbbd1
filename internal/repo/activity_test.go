package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := beginTestTx(t)
	r := repo.NewActivityRepo(tx)
	trip := createTestTrip(t, tx)

	occursAt := trip.StartsAt.AddDate(0, 0, 2)
	got, err := r.Create(context.Background(), domain.Activity{
		TripID:   trip.ID,
		Title:    "Tram ride",
		OccursAt: occursAt,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Tram ride", got.Title)
	assert.True(t, got.OccursAt.Equal(occursAt), "OccursAt mismatch")
}

func TestActivityRepo_ListByTripID_Chronological(t *testing.T) {
	tx := beginTestTx(t)
	r := repo.NewActivityRepo(tx)
	trip := createTestTrip(t, tx)
	ctx := context.Background()

	// Insert out of order; the list must come back chronological.
	later := trip.StartsAt.AddDate(0, 0, 5)
	earlier := trip.StartsAt.AddDate(0, 0, 1)

	_, err := r.Create(ctx, domain.Activity{TripID: trip.ID, Title: "Beach day", OccursAt: later})
	require.NoError(t, err)
	_, err = r.Create(ctx, domain.Activity{TripID: trip.ID, Title: "City walk", OccursAt: earlier})
	require.NoError(t, err)

	got, err := r.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "City walk", got[0].Title)
	assert.Equal(t, "Beach day", got[1].Title)
	assert.True(t, got[0].OccursAt.Before(got[1].OccursAt))
}

func TestActivityRepo_ListByTripID_Empty(t *testing.T) {
	tx := beginTestTx(t)
	r := repo.NewActivityRepo(tx)
	trip := createTestTrip(t, tx)

	got, err := r.ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Empty(t, got)
}
