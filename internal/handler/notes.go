package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// NotesRequest is the body for PUT /trips/{tripId}/days/{dayId}/notes.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// PutDayNotes handles PUT .../days/{dayId}/notes.
// The write is debounced: the store is touched only after the user stops
// editing, and a newer request cancels the pending one. 202 Accepted
// reflects that the edit has been taken but not necessarily flushed.
func (s *Server) PutDayNotes(w http.ResponseWriter, r *http.Request) {
	tripID, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	var body NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	// The day must exist before its note key is written; note keys outlive
	// their day otherwise.
	if _, err := s.days.GetDay(r.Context(), tripID, dayID); err != nil {
		s.respondDayError(w, err)
		return
	}

	s.notes.Save(dayID, body.Notes)
	w.WriteHeader(http.StatusAccepted)
}

// GetDayNotes handles GET .../days/{dayId}/notes, returning the latest
// note text — pending edits included, so a read right after a write sees
// the new value even inside the debounce window.
func (s *Server) GetDayNotes(w http.ResponseWriter, r *http.Request) {
	_, dayID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	value, err := s.notes.Get(r.Context(), dayID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "no notes stored for day")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"notes": value})
}
