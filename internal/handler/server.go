// Package handler implements the HTTP handlers for the Trip Planner API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (health.go, trip.go, day.go, ...) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, []domain.DayPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, []domain.DayPlan, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DayServicer defines the day-plan and activity operations the day
// handlers depend on.
type DayServicer interface {
	GetDay(ctx context.Context, tripID, dayID uuid.UUID) (domain.DayPlan, error)
	UpdateDay(ctx context.Context, tripID, dayID uuid.UUID, patch domain.DayPatch) (domain.DayPlan, error)
	AddActivity(ctx context.Context, tripID, dayID uuid.UUID, activity string) (domain.DayPlan, error)
	RemoveActivity(ctx context.Context, tripID, dayID uuid.UUID, index int) (domain.DayPlan, error)
	ReorderActivities(ctx context.Context, tripID, dayID uuid.UUID, fromIndex, toIndex int) (domain.DayPlan, error)
	ReorderDays(ctx context.Context, tripID uuid.UUID, fromIndex, toIndex int) ([]domain.DayPlan, error)
	SelectDayForDate(ctx context.Context, tripID uuid.UUID, date time.Time) (uuid.UUID, error)
	MapView(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.MapActivity, error)
	SetActivityLocation(ctx context.Context, tripID, dayID uuid.UUID, index int, location string) (domain.DayPlan, error)
}

// NotesServicer defines the debounced per-day note operations.
type NotesServicer interface {
	Save(dayID uuid.UUID, value string)
	Get(ctx context.Context, dayID uuid.UUID) (string, error)
}

// ExportServicer defines the trip export operation.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// Server implements all API endpoints. Methods are in domain-specific
// files but all operate on this struct.
type Server struct {
	trips  TripServicer
	days   DayServicer
	notes  NotesServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, days DayServicer, notes NotesServicer, export ExportServicer) *Server {
	return &Server{trips: trips, days: days, notes: notes, export: export}
}

// Routes mounts every endpoint on a fresh chi router.
// Middleware (request id, logging, CORS, body limits) is applied by the
// caller around the returned router, not here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/export", s.ExportTrip)

			r.Route("/days", func(r chi.Router) {
				r.Post("/reorder", s.ReorderDays)
				r.Get("/select", s.SelectDayForDate)

				r.Route("/{dayId}", func(r chi.Router) {
					r.Get("/", s.GetDay)
					r.Patch("/", s.UpdateDay)
					r.Get("/map", s.GetDayMap)
					r.Get("/notes", s.GetDayNotes)
					r.Put("/notes", s.PutDayNotes)

					r.Route("/activities", func(r chi.Router) {
						r.Post("/", s.AddActivity)
						r.Post("/reorder", s.ReorderActivities)
						r.Delete("/{index}", s.RemoveActivity)
						r.Put("/{index}/location", s.SetActivityLocation)
					})
				})
			})
		})
	})

	r.Get("/suggestions", s.GetSuggestions)
	r.Get("/phrasebook", s.GetPhrasebook)
	r.Get("/emergency", s.GetEmergencyInfo)

	return r
}
