/**
 * @description
 * Shared helpers for the HTTP handlers: JSON response writing and the mapping
 * from business sentinel errors to HTTP statuses. Handlers are responsible
 * for parsing requests, calling the appropriate service method, and writing
 * the response; all business rules live in the app layer.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexref/pup-service/internal/app"
)

// writeJSON is a helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// If encoding fails, we can't send a JSON error, so just log it.
		http.Error(w, `{"error":"Failed to encode response"}`, http.StatusInternalServerError)
	}
}

// statusForServiceError maps the business sentinel errors to HTTP statuses.
// Anything unrecognised is an internal error.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, app.ErrOrganisationNameInUse),
		errors.Is(err, app.ErrEmailAlreadyInUse),
		errors.Is(err, app.ErrUserIDAlreadyInUse),
		errors.Is(err, app.ErrPbaNumberAlreadyInUse),
		errors.Is(err, app.ErrAccountAlreadyAssigned),
		errors.Is(err, app.ErrAccountNotAssigned):
		return http.StatusConflict
	case errors.Is(err, app.ErrProfessionalUserDoesNotExist),
		errors.Is(err, app.ErrPaymentAccountDoesNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes an error response for a failed service call.
func serviceError(w http.ResponseWriter, err error) {
	status := statusForServiceError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
