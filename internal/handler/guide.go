package handler

import (
	"net/http"

	"github.com/tripkit/trip-planner/backend/internal/guide"
)

// The guide endpoints serve static lookup tables and need no service or
// repo behind them; destination is the only input.

// GetSuggestions handles GET /suggestions?destination=X.
func (s *Server) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	destination, ok := requireDestination(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string][]guide.Suggestion{
		"suggestions": guide.SuggestionsFor(destination),
	})
}

// GetPhrasebook handles GET /phrasebook?destination=X.
func (s *Server) GetPhrasebook(w http.ResponseWriter, r *http.Request) {
	destination, ok := requireDestination(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, guide.PhrasebookFor(destination))
}

// GetEmergencyInfo handles GET /emergency?destination=X.
func (s *Server) GetEmergencyInfo(w http.ResponseWriter, r *http.Request) {
	destination, ok := requireDestination(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, guide.EmergencyInfoFor(destination))
}

// requireDestination extracts the destination query parameter, rejecting
// requests without one.
func requireDestination(w http.ResponseWriter, r *http.Request) (string, bool) {
	destination := r.URL.Query().Get("destination")
	if destination == "" {
		respondBadRequest(w, "destination is required")
		return "", false
	}
	return destination, true
}
