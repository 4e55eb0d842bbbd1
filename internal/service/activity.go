package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trips repo as well because creating or listing activities
// requires the parent trip to exist.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided
// repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against its parent trip, then persists.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrInvalidActivityDate if occurs_at falls outside the trip's
// date window. Both window boundaries are inclusive.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if len(strings.TrimSpace(activity.Title)) < 4 {
		return domain.Activity{}, fmt.Errorf("%w: title must be at least 4 characters", domain.ErrValidation)
	}
	if activity.OccursAt.Before(trip.StartsAt) || activity.OccursAt.After(trip.EndsAt) {
		return domain.Activity{}, fmt.Errorf("%w: occurs_at must be between %s and %s",
			domain.ErrInvalidActivityDate, trip.StartsAt.Format("2006-01-02"), trip.EndsAt.Format("2006-01-02"))
	}

	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListByTripID returns all activities of a trip in chronological order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}
