package domain

import "github.com/google/uuid"

// AddressType is a read-only lookup entity with a unique name. The core never
// mutates it; rows are seeded by migrations.
type AddressType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
