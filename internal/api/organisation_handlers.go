/**
 * @description
 * HTTP handlers for the organisation endpoints.
 */
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexref/pup-service/internal/app"
	"github.com/lexref/pup-service/internal/domain"
)

// OrganisationHandler holds the dependencies for organisation-related handlers.
type OrganisationHandler struct {
	service *app.OrganisationService
}

// NewOrganisationHandler creates a new OrganisationHandler.
func NewOrganisationHandler(service *app.OrganisationService) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// CreateOrganisation handles the creation of a new organisation.
func (h *OrganisationHandler) CreateOrganisation(w http.ResponseWriter, r *http.Request) {
	var req domain.OrganisationCreation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	org, err := h.service.Create(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

// GetOrganisation handles retrieval of an organisation by id.
func (h *OrganisationHandler) GetOrganisation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		http.Error(w, "Invalid organisation id", http.StatusBadRequest)
		return
	}

	org, err := h.service.Retrieve(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	if org == nil {
		http.Error(w, "Organisation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

// DeleteOrganisation handles deletion of an organisation by id.
func (h *OrganisationHandler) DeleteOrganisation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		http.Error(w, "Invalid organisation id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
