/**
 * @description
 * Read-only business logic for the address-type lookup entity. Included for
 * completeness of the reference-data model; the core never mutates it.
 */
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lexref/pup-service/internal/domain"
	"github.com/lexref/pup-service/internal/store"
)

// AddressTypeService provides read access to address types.
type AddressTypeService struct {
	repo store.AddressTypeRepository
}

// NewAddressTypeService creates a new instance of AddressTypeService.
func NewAddressTypeService(repo store.AddressTypeRepository) *AddressTypeService {
	return &AddressTypeService{repo: repo}
}

// Retrieve returns the address type with the given id, or nil when absent.
func (s *AddressTypeService) Retrieve(ctx context.Context, id uuid.UUID) (*domain.AddressType, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrAddressTypeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieving address type: %w", err)
	}
	return at, nil
}

// List returns all address types.
func (s *AddressTypeService) List(ctx context.Context) ([]domain.AddressType, error) {
	return s.repo.List(ctx)
}
