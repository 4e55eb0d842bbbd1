package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
)

// createActivityRequest mirrors the POST /trips/{tripID}/activities body.
type createActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

func (req createActivityRequest) validate() map[string][]string {
	fields := map[string][]string{}
	if len(req.Title) < 4 {
		fields["title"] = append(fields["title"], "must be at least 4 characters")
	}
	if req.OccursAt.IsZero() {
		fields["occurs_at"] = append(fields["occurs_at"], "is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// handleCreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		clientError(w, "invalid request body")
		return
	}
	if fields := req.validate(); fields != nil {
		schemaError(w, fields)
		return
	}

	activity, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:   tripID,
		Title:    req.Title,
		OccursAt: req.OccursAt,
	})
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]uuid.UUID{"activityId": activity.ID})
}

// handleListActivities handles GET /trips/{tripID}/activities.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	activities, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.Activity{"activities": activities})
}
