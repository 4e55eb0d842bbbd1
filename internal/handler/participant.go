package handler

import (
	"net/http"

	"github.com/google/uuid"
)

// confirmParticipantRequest mirrors the PATCH
// /participants/{participantID}/confirm body. The supplied name replaces
// the stored one on success.
type confirmParticipantRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (req confirmParticipantRequest) validate() map[string][]string {
	fields := map[string][]string{}
	if !validEmail(req.Email) {
		fields["email"] = append(fields["email"], "must be a valid email")
	}
	if req.Name == "" {
		fields["name"] = append(fields["name"], "is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// handleConfirmParticipant handles PATCH /participants/{participantID}/confirm.
// Responds 204 on success; confirming twice is a harmless no-op.
func (s *Server) handleConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "participantID")
	if !ok {
		clientError(w, "invalid participant id")
		return
	}

	var req confirmParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		clientError(w, "invalid request body")
		return
	}
	if fields := req.validate(); fields != nil {
		schemaError(w, fields)
		return
	}

	if _, err := s.participants.Confirm(r.Context(), id, req.Email, req.Name); err != nil {
		respondDomainError(w, r, err, "participant not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// participantResponse is the read projection returned by GET
// /trips/participants/{participantID}. Trip linkage and ownership are
// omitted; the confirmation page only needs identity and state.
type participantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// handleGetParticipant handles GET /trips/participants/{participantID}.
func (s *Server) handleGetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "participantID")
	if !ok {
		clientError(w, "invalid participant id")
		return
	}

	participant, err := s.participants.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err, "participant not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]participantResponse{"participant": {
		ID:          participant.ID,
		Name:        participant.Name,
		Email:       participant.Email,
		IsConfirmed: participant.IsConfirmed,
	}})
}
