package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

// LinkService implements business logic for Link operations.
// It holds the trips repo as well because links require the parent trip to
// exist.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create validates the link, verifies the parent trip exists, then
// persists. Links carry no date invariant.
func (s *LinkService) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, link.TripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}

	if len(strings.TrimSpace(link.Title)) < 4 {
		return domain.Link{}, fmt.Errorf("%w: title must be at least 4 characters", domain.ErrValidation)
	}
	if u, err := url.Parse(link.URL); err != nil || !u.IsAbs() || u.Host == "" {
		return domain.Link{}, fmt.Errorf("%w: url must be a valid absolute URL", domain.ErrValidation)
	}

	result, err := s.links.Create(ctx, link)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return result, nil
}

// ListByTripID returns all links of a trip.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}

	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}
