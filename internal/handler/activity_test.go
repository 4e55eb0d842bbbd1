package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/handler"
)

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

// ---- POST /trips/{tripID}/activities ---------------------------------------

func TestCreateActivity_200(t *testing.T) {
	tripID := uuid.New()
	activityID := uuid.New()
	occursAt := time.Date(2027, 6, 3, 10, 0, 0, 0, time.UTC)

	h := newHTTPHandler(serverDeps{activities: &mockActivityServicer{
		create: func(_ context.Context, activity domain.Activity) (domain.Activity, error) {
			assert.Equal(t, tripID, activity.TripID)
			assert.Equal(t, "Tram ride", activity.Title)
			activity.ID = activityID
			return activity, nil
		},
	}})

	body := jsonBody(t, map[string]any{
		"title":     "Tram ride",
		"occurs_at": occursAt.Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/activities", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, activityID.String(), resp["activityId"])
}

func TestCreateActivity_OutsideTripWindow(t *testing.T) {
	h := newHTTPHandler(serverDeps{activities: &mockActivityServicer{
		create: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrInvalidActivityDate
		},
	}})

	body := jsonBody(t, map[string]any{
		"title":     "Late dinner",
		"occurs_at": time.Now().Format(time.RFC3339),
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/activities", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp["message"], "activity date outside trip window")
}

func TestCreateActivity_SchemaErrors(t *testing.T) {
	h := newHTTPHandler(serverDeps{activities: &mockActivityServicer{}})

	body := jsonBody(t, map[string]any{"title": "x"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/activities", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.Errors, "title")
	assert.Contains(t, resp.Errors, "occurs_at")
}

// ---- GET /trips/{tripID}/activities ----------------------------------------

func TestListActivities_200(t *testing.T) {
	tripID := uuid.New()
	h := newHTTPHandler(serverDeps{activities: &mockActivityServicer{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Activity, error) {
			require.Equal(t, tripID, id)
			return []domain.Activity{
				{ID: uuid.New(), TripID: tripID, Title: "City walk", OccursAt: time.Date(2027, 6, 2, 9, 0, 0, 0, time.UTC)},
				{ID: uuid.New(), TripID: tripID, Title: "Beach day", OccursAt: time.Date(2027, 6, 4, 9, 0, 0, 0, time.UTC)},
			}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/activities", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Activities []domain.Activity `json:"activities"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Activities, 2)
	assert.Equal(t, "City walk", resp.Activities[0].Title)
}

func TestListActivities_TripNotFound(t *testing.T) {
	h := newHTTPHandler(serverDeps{activities: &mockActivityServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return nil, domain.ErrNotFound
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/activities", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
