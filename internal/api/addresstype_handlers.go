package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexref/pup-service/internal/app"
)

// AddressTypeHandler holds the dependencies for address-type handlers.
type AddressTypeHandler struct {
	service *app.AddressTypeService
}

// NewAddressTypeHandler creates a new AddressTypeHandler.
func NewAddressTypeHandler(service *app.AddressTypeService) *AddressTypeHandler {
	return &AddressTypeHandler{service: service}
}

// ListAddressTypes handles listing all address types.
func (h *AddressTypeHandler) ListAddressTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// GetAddressType handles retrieval of an address type by id.
func (h *AddressTypeHandler) GetAddressType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "addressTypeID"))
	if err != nil {
		http.Error(w, "Invalid address type id", http.StatusBadRequest)
		return
	}

	at, err := h.service.Retrieve(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	if at == nil {
		http.Error(w, "Address type not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, at)
}
