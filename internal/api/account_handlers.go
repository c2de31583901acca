/**
 * @description
 * HTTP handlers for the payment-account endpoints, including the assign and
 * unassign operations named by PBA number and the caller-scoped "mine" read.
 */
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lexref/pup-service/internal/app"
	"github.com/lexref/pup-service/internal/domain"
	"github.com/lexref/pup-service/pkg/middleware"
)

// PaymentAccountHandler holds the dependencies for account-related handlers.
type PaymentAccountHandler struct {
	service *app.PaymentAccountService
}

// NewPaymentAccountHandler creates a new PaymentAccountHandler.
func NewPaymentAccountHandler(service *app.PaymentAccountService) *PaymentAccountHandler {
	return &PaymentAccountHandler{service: service}
}

// CreatePaymentAccount handles the creation of a new payment account.
func (h *PaymentAccountHandler) CreatePaymentAccount(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentAccountCreation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.PbaNumber == "" {
		http.Error(w, "pba_number is required", http.StatusBadRequest)
		return
	}

	account, err := h.service.Create(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

// GetPaymentAccount handles retrieval of a payment account by PBA number.
func (h *PaymentAccountHandler) GetPaymentAccount(w http.ResponseWriter, r *http.Request) {
	pbaNumber := chi.URLParam(r, "pbaNumber")

	account, err := h.service.Retrieve(r.Context(), pbaNumber)
	if err != nil {
		serviceError(w, err)
		return
	}
	if account == nil {
		http.Error(w, "Payment account not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// DeletePaymentAccount handles deletion of a payment account by PBA number.
func (h *PaymentAccountHandler) DeletePaymentAccount(w http.ResponseWriter, r *http.Request) {
	pbaNumber := chi.URLParam(r, "pbaNumber")

	if err := h.service.Delete(r.Context(), pbaNumber); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignPaymentAccount handles assigning the account to the requested user.
func (h *PaymentAccountHandler) AssignPaymentAccount(w http.ResponseWriter, r *http.Request) {
	pbaNumber := chi.URLParam(r, "pbaNumber")

	var assignment domain.PaymentAccountAssignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if assignment.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.service.Assign(r.Context(), pbaNumber, assignment)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UnassignPaymentAccount handles removing the account from the requested user.
func (h *PaymentAccountHandler) UnassignPaymentAccount(w http.ResponseWriter, r *http.Request) {
	pbaNumber := chi.URLParam(r, "pbaNumber")

	var assignment domain.PaymentAccountAssignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if assignment.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.service.Unassign(r.Context(), pbaNumber, assignment)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// MyPaymentAccounts handles listing the accounts assigned to the
// authenticated caller. The caller's identity comes from the auth middleware;
// the service only ever sees a user id.
func (h *PaymentAccountHandler) MyPaymentAccounts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	accounts, err := h.service.RetrieveForUser(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}
