package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// DayResponse is the JSON form of a day plan.
type DayResponse struct {
	ID         string             `json:"id"`
	Date       openapi_types.Date `json:"date"`
	Activities []string           `json:"activities"`
	Notes      string             `json:"notes"`
	Icon       string             `json:"icon"`
}

// UpdateDayRequest is the body for PATCH /trips/{tripId}/days/{dayId}.
// Omitted fields are left unchanged.
type UpdateDayRequest struct {
	Activities *[]string `json:"activities,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	Icon       *string   `json:"icon,omitempty"`
}

// AddActivityRequest is the body for POST .../activities. DayID comes from
// the URL; the literal day id "-" means "no selection" and triggers the
// first-day fallback.
type AddActivityRequest struct {
	Activity string `json:"activity"`
}

// ReorderRequest is the body for both activity and day reorder endpoints.
type ReorderRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// SetLocationRequest is the body for PUT .../activities/{index}/location.
type SetLocationRequest struct {
	Location string `json:"location"`
}

// GetDay handles GET /trips/{tripId}/days/{dayId}.
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	day, err := s.days.GetDay(r.Context(), tripID, dayID)
	if err != nil {
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dayToResponse(day))
}

// UpdateDay handles PATCH /trips/{tripId}/days/{dayId}. The patch is
// merged into the day; other days and the day order are untouched.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	var body UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	patch := domain.DayPatch{Activities: body.Activities, Notes: body.Notes, Icon: body.Icon}
	day, err := s.days.UpdateDay(r.Context(), tripID, dayID, patch)
	if err != nil {
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dayToResponse(day))
}

// AddActivity handles POST /trips/{tripId}/days/{dayId}/activities.
// The day id "-" stands for "no day selected": the activity then goes to
// the trip's first day, and the response body names the day that actually
// received it.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}
	dayID, ok := s.optionalDayID(w, r)
	if !ok {
		return
	}

	var body AddActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Activity == "" {
		respondBadRequest(w, "activity is required")
		return
	}

	day, err := s.days.AddActivity(r.Context(), tripID, dayID, body.Activity)
	if err != nil {
		if errors.Is(err, domain.ErrNoDaySelected) {
			respondNoDaySelected(w)
			return
		}
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dayToResponse(day))
}

// RemoveActivity handles DELETE .../activities/{index}. An out-of-range
// index is a defined no-op: the day comes back unchanged.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}
	index, ok := s.pathIndex(w, r)
	if !ok {
		return
	}

	day, err := s.days.RemoveActivity(r.Context(), tripID, dayID, index)
	if err != nil {
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dayToResponse(day))
}

// ReorderActivities handles POST .../activities/reorder, moving one
// activity within the day with splice semantics.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	var body ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	day, err := s.days.ReorderActivities(r.Context(), tripID, dayID, body.FromIndex, body.ToIndex)
	if err != nil {
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dayToResponse(day))
}

// ReorderDays handles POST /trips/{tripId}/days/reorder, moving one day in
// the trip's day list.
func (s *Server) ReorderDays(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var body ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	days, err := s.days.ReorderDays(r.Context(), tripID, body.FromIndex, body.ToIndex)
	if err != nil {
		s.respondDayError(w, err)
		return
	}

	out := make([]DayResponse, len(days))
	for i, d := range days {
		out[i] = dayToResponse(d)
	}
	respondJSON(w, http.StatusOK, map[string][]DayResponse{"days": out})
}

// SelectDayForDate handles GET /trips/{tripId}/days/select?date=2006-01-02.
// A date with no matching day is a 404 — clients keep their current
// selection rather than guessing.
func (s *Server) SelectDayForDate(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), time.Local)
	if err != nil {
		respondBadRequest(w, "date must be formatted as 2006-01-02")
		return
	}

	dayID, err := s.days.SelectDayForDate(r.Context(), tripID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "no day matches the requested date")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"day_id": dayID.String()})
}

// GetDayMap handles GET .../days/{dayId}/map, the numbered map-marker view
// of the day's activities with explicit or inferred locations.
func (s *Server) GetDayMap(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	markers, err := s.days.MapView(r.Context(), tripID, dayID)
	if err != nil {
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]domain.MapActivity{"activities": markers})
}

// SetActivityLocation handles PUT .../activities/{index}/location,
// rewriting the activity's [at: ...] tag. Adding and editing share this
// endpoint.
func (s *Server) SetActivityLocation(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}
	index, ok := s.pathIndex(w, r)
	if !ok {
		return
	}

	var body SetLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Location == "" {
		respondBadRequest(w, "location is required")
		return
	}

	day, err := s.days.SetActivityLocation(r.Context(), tripID, dayID, index, body.Location)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		s.respondDayError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dayToResponse(day))
}

// --- helpers ----------------------------------------------------------------

// pathIDs parses the tripId and dayId URL parameters, writing the error
// response itself on failure.
func (s *Server) pathIDs(w http.ResponseWriter, r *http.Request) (tripID, dayID uuid.UUID, ok bool) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return uuid.Nil, uuid.Nil, false
	}
	dayID, err = pathUUID(r, "dayId")
	if err != nil {
		respondBadRequest(w, "invalid day id")
		return uuid.Nil, uuid.Nil, false
	}
	return tripID, dayID, true
}

// optionalDayID parses the dayId URL parameter, treating the literal "-"
// as "no day selected" (uuid.Nil) so clients without a selection can still
// add activities via the first-day fallback.
func (s *Server) optionalDayID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "dayId")
	if raw == "-" {
		return uuid.Nil, true
	}
	dayID, err := uuid.Parse(raw)
	if err != nil {
		respondBadRequest(w, "invalid day id")
		return uuid.Nil, false
	}
	return dayID, true
}

// pathIndex parses the activity index URL parameter.
func (s *Server) pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondBadRequest(w, "invalid activity index")
		return 0, false
	}
	return index, true
}

// respondDayError maps the common service error cases for day endpoints.
func (s *Server) respondDayError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondNotFound(w, "trip or day not found")
		return
	}
	respondInternal(w, err)
}

// dayToResponse converts a domain.DayPlan into the wire form.
func dayToResponse(d domain.DayPlan) DayResponse {
	activities := d.Activities
	if activities == nil {
		activities = []string{}
	}
	return DayResponse{
		ID:         d.ID.String(),
		Date:       openapi_types.Date{Time: d.Date},
		Activities: activities,
		Notes:      d.Notes,
		Icon:       d.Icon,
	}
}
