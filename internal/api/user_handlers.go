/**
 * @description
 * HTTP handlers for the professional-user endpoints.
 */
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lexref/pup-service/internal/app"
	"github.com/lexref/pup-service/internal/domain"
)

// ProfessionalUserHandler holds the dependencies for user-related handlers.
type ProfessionalUserHandler struct {
	service *app.ProfessionalUserService
}

// NewProfessionalUserHandler creates a new ProfessionalUserHandler.
func NewProfessionalUserHandler(service *app.ProfessionalUserService) *ProfessionalUserHandler {
	return &ProfessionalUserHandler{service: service}
}

// CreateProfessionalUser handles the creation of a new professional user.
func (h *ProfessionalUserHandler) CreateProfessionalUser(w http.ResponseWriter, r *http.Request) {
	var req domain.ProfessionalUserCreation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Email == "" {
		http.Error(w, "user_id and email are required", http.StatusBadRequest)
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// GetProfessionalUser handles retrieval of a user by business user id.
func (h *ProfessionalUserHandler) GetProfessionalUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.service.Retrieve(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	if user == nil {
		http.Error(w, "Professional user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteProfessionalUser handles deletion of a user by business user id.
func (h *ProfessionalUserHandler) DeleteProfessionalUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.service.Delete(r.Context(), userID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAssignedAccounts handles listing the payment accounts assigned to a user.
func (h *ProfessionalUserHandler) ListAssignedAccounts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	accounts, err := h.service.RetrieveAccountsForUser(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}
