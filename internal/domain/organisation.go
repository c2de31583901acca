/**
 * @description
 * This file defines the Organisation domain model. An organisation is the
 * legal-services entity that professional users and payment accounts belong to.
 *
 * @notes
 * - Organisation names are globally unique; the `organisations_name_key`
 *   constraint in the database backs the application-level check.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrganisationType enumerates the kinds of organisation the service tracks.
type OrganisationType string

const (
	OrganisationTypeLegalRepresentation OrganisationType = "LEGAL_REPRESENTATION"
)

// Organisation maps directly to the `organisations` table.
type Organisation struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Type      OrganisationType `json:"organisation_type"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// OrganisationCreation is the DTO for incoming organisation creation requests.
type OrganisationCreation struct {
	Name string           `json:"name"`
	Type OrganisationType `json:"organisation_type"`
}
