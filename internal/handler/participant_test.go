package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/handler"
)

// mockParticipantServicer is a test double for handler.ParticipantServicer.
type mockParticipantServicer struct {
	confirm func(ctx context.Context, id uuid.UUID, email, name string) (domain.Participant, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID, email, name string) (domain.Participant, error) {
	return m.confirm(ctx, id, email, name)
}
func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}

var _ handler.ParticipantServicer = (*mockParticipantServicer)(nil)

// ---- PATCH /participants/{participantID}/confirm ---------------------------

func TestConfirmParticipant_204(t *testing.T) {
	participantID := uuid.New()
	h := newHTTPHandler(serverDeps{participants: &mockParticipantServicer{
		confirm: func(_ context.Context, id uuid.UUID, email, name string) (domain.Participant, error) {
			assert.Equal(t, participantID, id)
			assert.Equal(t, "bob@example.com", email)
			assert.Equal(t, "Bob Builder", name)
			return domain.Participant{ID: id, Email: email, Name: name, IsConfirmed: true}, nil
		},
	}})

	body := jsonBody(t, map[string]any{"email": "bob@example.com", "name": "Bob Builder"})
	req := httptest.NewRequest(http.MethodPatch, "/participants/"+participantID.String()+"/confirm", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestConfirmParticipant_EmailMismatch(t *testing.T) {
	h := newHTTPHandler(serverDeps{participants: &mockParticipantServicer{
		confirm: func(_ context.Context, _ uuid.UUID, _, _ string) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrEmailMismatch
		},
	}})

	body := jsonBody(t, map[string]any{"email": "mallory@example.com", "name": "Mallory"})
	req := httptest.NewRequest(http.MethodPatch, "/participants/"+uuid.NewString()+"/confirm", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp["message"], "email does not match")
}

func TestConfirmParticipant_NotFound(t *testing.T) {
	h := newHTTPHandler(serverDeps{participants: &mockParticipantServicer{
		confirm: func(_ context.Context, _ uuid.UUID, _, _ string) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}})

	body := jsonBody(t, map[string]any{"email": "bob@example.com", "name": "Bob"})
	req := httptest.NewRequest(http.MethodPatch, "/participants/"+uuid.NewString()+"/confirm", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, "participant not found", resp["message"])
}

func TestConfirmParticipant_SchemaErrors(t *testing.T) {
	h := newHTTPHandler(serverDeps{participants: &mockParticipantServicer{}})

	body := jsonBody(t, map[string]any{"email": "not-an-email"})
	req := httptest.NewRequest(http.MethodPatch, "/participants/"+uuid.NewString()+"/confirm", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Invalid inputs", resp.Message)
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "name")
}

// ---- GET /trips/participants/{participantID} -------------------------------

func TestGetParticipant_200(t *testing.T) {
	participant := domain.Participant{
		ID:          uuid.New(),
		TripID:      uuid.New(),
		Name:        "Bob Builder",
		Email:       "bob@example.com",
		IsConfirmed: true,
	}
	h := newHTTPHandler(serverDeps{participants: &mockParticipantServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Participant, error) {
			require.Equal(t, participant.ID, id)
			return participant, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/participants/"+participant.ID.String(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Participant struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Email       string `json:"email"`
			IsConfirmed bool   `json:"is_confirmed"`
		} `json:"participant"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, participant.ID.String(), resp.Participant.ID)
	assert.Equal(t, "bob@example.com", resp.Participant.Email)
	assert.True(t, resp.Participant.IsConfirmed)
}

func TestGetParticipant_NotFound(t *testing.T) {
	h := newHTTPHandler(serverDeps{participants: &mockParticipantServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/participants/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
