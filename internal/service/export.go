package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

// ExportService assembles a full flat export of all trips and their
// participants.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided
// TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one TripExportRow per participant across all trips.
// Trips with no participants contribute one row with empty participant
// fields. Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.TripExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.TripExportRow, 0, len(trips))
	for _, trip := range trips {
		base := domain.TripExportRow{
			TripID:        trip.ID.String(),
			Destination:   trip.Destination,
			StartsAt:      trip.StartsAt.UTC().Format(time.RFC3339),
			EndsAt:        trip.EndsAt.UTC().Format(time.RFC3339),
			TripConfirmed: trip.IsConfirmed,
		}

		if len(trip.Participants) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, p := range trip.Participants {
			row := base
			row.ParticipantName = p.Name
			row.ParticipantEmail = p.Email
			row.ParticipantIsOwner = p.IsOwner
			row.ParticipantConfirmed = p.IsConfirmed
			rows = append(rows, row)
		}
	}

	return rows, nil
}
