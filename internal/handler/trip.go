package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/service"
)

// createTripRequest mirrors the POST /trips body.
type createTripRequest struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	EmailsToInvite []string  `json:"emails_to_invite"`
}

// validate checks the request shape: presence and format, not business
// rules. Date ordering lives in the service layer.
func (req createTripRequest) validate() map[string][]string {
	fields := map[string][]string{}
	if len(req.Destination) < 4 {
		fields["destination"] = append(fields["destination"], "must be at least 4 characters")
	}
	if req.StartsAt.IsZero() {
		fields["starts_at"] = append(fields["starts_at"], "is required")
	}
	if req.EndsAt.IsZero() {
		fields["ends_at"] = append(fields["ends_at"], "is required")
	}
	if req.OwnerName == "" {
		fields["owner_name"] = append(fields["owner_name"], "is required")
	}
	if !validEmail(req.OwnerEmail) {
		fields["owner_email"] = append(fields["owner_email"], "must be a valid email")
	}
	for _, email := range req.EmailsToInvite {
		if !validEmail(email) {
			fields["emails_to_invite"] = append(fields["emails_to_invite"], "must contain only valid emails")
			break
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// handleCreateTrip handles POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		clientError(w, "invalid request body")
		return
	}
	if fields := req.validate(); fields != nil {
		schemaError(w, fields)
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]uuid.UUID{"tripId": trip.ID})
}

// handleConfirmTrip handles GET /trips/{tripID}/confirm.
// On success (and on repeat confirmation) it redirects to the trip's web
// page; the second call never re-sends participant mail.
func (s *Server) handleConfirmTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	target, err := s.trips.Confirm(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// updateTripRequest mirrors the PUT /trips/{tripID} body.
type updateTripRequest struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

func (req updateTripRequest) validate() map[string][]string {
	fields := map[string][]string{}
	if len(req.Destination) < 4 {
		fields["destination"] = append(fields["destination"], "must be at least 4 characters")
	}
	if req.StartsAt.IsZero() {
		fields["starts_at"] = append(fields["starts_at"], "is required")
	}
	if req.EndsAt.IsZero() {
		fields["ends_at"] = append(fields["ends_at"], "is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// handleUpdateTrip handles PUT /trips/{tripID}.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		clientError(w, "invalid request body")
		return
	}
	if fields := req.validate(); fields != nil {
		schemaError(w, fields)
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          id,
		Destination: req.Destination,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]uuid.UUID{"tripId": updated.ID})
}

// handleGetTrip handles GET /trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetDetails(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]domain.Trip{"trip": trip})
}

// handleListTrips handles GET /trips. The response is a bare array, each
// trip with its participants attached.
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, trips)
}
