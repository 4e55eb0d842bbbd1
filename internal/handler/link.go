package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
)

// createLinkRequest mirrors the POST /trips/{tripID}/links body.
type createLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (req createLinkRequest) validate() map[string][]string {
	fields := map[string][]string{}
	if len(req.Title) < 4 {
		fields["title"] = append(fields["title"], "must be at least 4 characters")
	}
	if req.URL == "" {
		fields["url"] = append(fields["url"], "is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// handleCreateLink handles POST /trips/{tripID}/links.
func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	var req createLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		clientError(w, "invalid request body")
		return
	}
	if fields := req.validate(); fields != nil {
		schemaError(w, fields)
		return
	}

	link, err := s.links.Create(r.Context(), domain.Link{
		TripID: tripID,
		Title:  req.Title,
		URL:    req.URL,
	})
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]uuid.UUID{"linkId": link.ID})
}

// handleListLinks handles GET /trips/{tripID}/links.
func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		clientError(w, "invalid trip id")
		return
	}

	links, err := s.links.ListByTripID(r.Context(), tripID)
	if err != nil {
		respondDomainError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.Link{"links": links})
}
