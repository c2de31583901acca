/**
 * @description
 * This file defines the ProfessionalUser domain model. A professional user is
 * an individual belonging to an organisation, identified externally by a
 * business user ID and internally by a UUID.
 *
 * @notes
 * - Email and the business user ID are both unique across the store.
 * - The set of assigned payment accounts is stored in the
 *   `account_assignments` join table and surfaced here as a slice populated
 *   by the service layer. It has set semantics: unordered, no duplicates.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalUser maps to the `professional_users` table.
type ProfessionalUser struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"user_id"`
	FirstName      string    `json:"first_name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	OrganisationID uuid.UUID `json:"organisation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// PaymentAccounts holds the user's current assignment set when the
	// operation that produced this value resolves it.
	PaymentAccounts []PaymentAccount `json:"payment_accounts,omitempty"`
}

// ProfessionalUserCreation is the DTO for incoming user creation requests.
type ProfessionalUserCreation struct {
	UserID         string    `json:"user_id"`
	FirstName      string    `json:"first_name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	OrganisationID uuid.UUID `json:"organisation_id"`
}
