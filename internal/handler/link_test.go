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

// mockLinkServicer is a test double for handler.LinkServicer.
type mockLinkServicer struct {
	create       func(ctx context.Context, link domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkServicer) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	return m.create(ctx, link)
}
func (m *mockLinkServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.LinkServicer = (*mockLinkServicer)(nil)

// ---- POST /trips/{tripID}/links --------------------------------------------

func TestCreateLink_200(t *testing.T) {
	tripID := uuid.New()
	linkID := uuid.New()
	h := newHTTPHandler(serverDeps{links: &mockLinkServicer{
		create: func(_ context.Context, link domain.Link) (domain.Link, error) {
			assert.Equal(t, tripID, link.TripID)
			link.ID = linkID
			return link, nil
		},
	}})

	body := jsonBody(t, map[string]any{
		"title": "Airbnb booking",
		"url":   "https://example.com/booking/42",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/links", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, linkID.String(), resp["linkId"])
}

func TestCreateLink_InvalidURL(t *testing.T) {
	h := newHTTPHandler(serverDeps{links: &mockLinkServicer{
		create: func(_ context.Context, _ domain.Link) (domain.Link, error) {
			return domain.Link{}, domain.ErrValidation
		},
	}})

	body := jsonBody(t, map[string]any{"title": "Some link", "url": "not-a-url"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/links", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLink_TripNotFound(t *testing.T) {
	h := newHTTPHandler(serverDeps{links: &mockLinkServicer{
		create: func(_ context.Context, _ domain.Link) (domain.Link, error) {
			return domain.Link{}, domain.ErrNotFound
		},
	}})

	body := jsonBody(t, map[string]any{"title": "Some link", "url": "https://example.com"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/links", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, "trip not found", resp["message"])
}

// ---- GET /trips/{tripID}/links ---------------------------------------------

func TestListLinks_200(t *testing.T) {
	tripID := uuid.New()
	h := newHTTPHandler(serverDeps{links: &mockLinkServicer{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Link, error) {
			require.Equal(t, tripID, id)
			return []domain.Link{
				{ID: uuid.New(), TripID: tripID, Title: "House listing", URL: "https://example.com/house"},
			}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/links", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Links []domain.Link `json:"links"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Links, 1)
	assert.Equal(t, "House listing", resp.Links[0].Title)
}
