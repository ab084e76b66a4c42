package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON error envelope shared by every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as the JSON body with the given status code.
// Encoding failures are logged, not surfaced — the status line is already
// on the wire by then.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondNotFound writes a 404 with the standard error envelope.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func respondNotFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// respondValidation writes a 422 for a domain validation failure, with the
// message extracted from the wrapped domain.ErrValidation error.
func respondValidation(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
}

// respondBadRequest writes a 422 for a request rejected before reaching
// the service layer (e.g. missing or malformed body or path parameter).
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// respondNoDaySelected writes a 422 for an activity add against a trip
// with no days. The edit was dropped, not misapplied; the code lets the
// client distinguish this from field validation.
func respondNoDaySelected(w http.ResponseWriter) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "no_day_selected", Message: "trip has no days to add the activity to"}})
}

// respondInternal logs err and writes an opaque 500.
func respondInternal(w http.ResponseWriter, err error) {
	slog.Error("handler error", "error", err)
	respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal", Message: "internal server error"}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: destination
// is required" → "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
