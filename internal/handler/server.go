// Package handler implements the HTTP layer of the trip planner API.
// Handlers decode and schema-validate requests, call the service layer,
// and map domain errors onto the wire contract. All handlers are methods
// on Server; they are split into entity-specific files but share the same
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/service"
)

// TripServicer defines the trip workflow operations the handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or mail layers.
type TripServicer interface {
	Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (string, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetDetails(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
}

// ParticipantServicer defines the participant operations the handlers
// depend on.
type ParticipantServicer interface {
	Confirm(ctx context.Context, id uuid.UUID, email, name string) (domain.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

// LinkServicer defines the link operations the handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, link domain.Link) (domain.Link, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.TripExportRow, error)
}

// Server holds the service dependencies for all API endpoints.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer
	export       ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer, links LinkServicer, export ExportServicer) *Server {
	return &Server{
		trips:        trips,
		participants: participants,
		activities:   activities,
		links:        links,
		export:       export,
	}
}

// Routes returns the chi router with every endpoint registered.
// The static /trips/participants and /trips/export segments take priority
// over the /trips/{tripID} parameter in chi's routing, so the GET
// participant projection keeps its legacy path.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.handleCreateTrip)
		r.Get("/", s.handleListTrips)
		r.Get("/export", s.handleExportTrips)
		r.Get("/participants/{participantID}", s.handleGetParticipant)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Get("/confirm", s.handleConfirmTrip)
			r.Post("/activities", s.handleCreateActivity)
			r.Get("/activities", s.handleListActivities)
			r.Post("/links", s.handleCreateLink)
			r.Get("/links", s.handleListLinks)
		})
	})

	r.Patch("/participants/{participantID}/confirm", s.handleConfirmParticipant)

	return r
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
