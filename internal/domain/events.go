/**
 * @description
 * This file defines the contracts for messages exchanged with the message
 * broker (RabbitMQ): the domain events the service publishes and the batch
 * import payload it consumes.
 *
 * @notes
 * - Having a clear contract for events is crucial for keeping the batch
 *   importer and any downstream consumers stable.
 */
package domain

import "time"

// Exchange and routing keys for reference-data events.
const (
	RefDataExchange = "refdata_events"

	RoutingKeyOrganisationCreated = "organisation.created"
	RoutingKeyUserCreated         = "professional_user.created"
	RoutingKeyAccountCreated      = "payment_account.created"
	RoutingKeyAccountAssigned     = "payment_account.assigned"
	RoutingKeyAccountUnassigned   = "payment_account.unassigned"
)

// Exchange and queue for the CSV assignment import feed.
const (
	AssignmentImportExchange   = "assignment_import"
	AssignmentImportQueue      = "pup_assignment_import"
	AssignmentImportRoutingKey = "assignment.csv.row"
)

// OrganisationCreatedEvent is published after an organisation is persisted.
type OrganisationCreatedEvent struct {
	OrganisationID string    `json:"organisation_id"`
	Name           string    `json:"name"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ProfessionalUserCreatedEvent is published after a user is persisted.
type ProfessionalUserCreatedEvent struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	OrganisationID string    `json:"organisation_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// PaymentAccountCreatedEvent is published after a payment account is persisted.
type PaymentAccountCreatedEvent struct {
	PbaNumber      string    `json:"pba_number"`
	OrganisationID string    `json:"organisation_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// AccountAssignmentEvent is published when a payment account is assigned to,
// or unassigned from, a professional user.
type AccountAssignmentEvent struct {
	UserID     string    `json:"user_id"`
	PbaNumber  string    `json:"pba_number"`
	OccurredAt time.Time `json:"occurred_at"`
}
