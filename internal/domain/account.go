/**
 * @description
 * This file defines the PaymentAccount domain model and the assignment DTO.
 * A payment account is a billing account identified by its PBA number; it can
 * be assigned to any number of professional users at once (many-to-many).
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentAccount maps to the `payment_accounts` table.
type PaymentAccount struct {
	ID             uuid.UUID `json:"id"`
	PbaNumber      string    `json:"pba_number"`
	OrganisationID uuid.UUID `json:"organisation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaymentAccountCreation is the DTO for incoming account creation requests.
type PaymentAccountCreation struct {
	PbaNumber      string    `json:"pba_number"`
	OrganisationID uuid.UUID `json:"organisation_id"`
}

// PaymentAccountAssignment names the professional user an assign or unassign
// request applies to. The account side is named by PBA number in the URL.
type PaymentAccountAssignment struct {
	UserID string `json:"user_id"`
}
