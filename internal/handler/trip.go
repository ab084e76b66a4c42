package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// CreateTripRequest is the body for POST /trips. Dates are date-only
// ("2006-01-02"), parsed by the openapi runtime Date type.
type CreateTripRequest struct {
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
}

// TripResponse is the JSON form of a trip, with day plans included where
// the endpoint returns them.
type TripResponse struct {
	ID          string             `json:"id"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Days        []DayResponse      `json:"days,omitempty"`
}

// Pagination echoes the page window of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripListResponse is the body for GET /trips.
type TripListResponse struct {
	Data       []TripResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// CreateTrip handles POST /trips. Creating a trip derives one empty day
// plan per calendar day, so the response carries the full day collection.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	trip := domain.Trip{
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
	}

	created, days, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, tripToResponse(created, days))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		respondInternal(w, err)
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t, nil)
	}
	respondJSON(w, http.StatusOK, TripListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripId}, returning the trip with its
// ordered day plans.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	trip, days, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tripToResponse(trip, days))
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportTrip handles GET /trips/{tripId}/export, the flat one-row-per-
// activity view of the whole trip.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	rows, err := s.export.Export(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.ExportRow{"rows": rows})
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip (and optionally its days) into the
// wire form.
func tripToResponse(t domain.Trip, days []domain.DayPlan) TripResponse {
	resp := TripResponse{
		ID:          t.ID.String(),
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
	}
	if days != nil {
		resp.Days = make([]DayResponse, len(days))
		for i, d := range days {
			resp.Days[i] = dayToResponse(d)
		}
	}
	return resp
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
