/**
 * @description
 * This file contains the business logic for organisations. The service keeps
 * the API handlers thin: handlers parse HTTP, this layer enforces the name
 * uniqueness rule and talks to the repository.
 */
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lexref/pup-service/internal/domain"
	"github.com/lexref/pup-service/internal/store"
	"github.com/lexref/pup-service/pkg/rabbitmq"
)

// OrganisationService provides methods for managing organisations.
type OrganisationService struct {
	orgRepo   store.OrganisationRepository
	publisher rabbitmq.Publisher
}

// NewOrganisationService creates a new instance of OrganisationService.
func NewOrganisationService(orgRepo store.OrganisationRepository, publisher rabbitmq.Publisher) *OrganisationService {
	return &OrganisationService{orgRepo: orgRepo, publisher: publisher}
}

// Create persists a new organisation. It fails with ErrOrganisationNameInUse
// when an organisation with the requested name already exists; the unique
// constraint on the name column turns a concurrent duplicate creation into
// the same rejection.
func (s *OrganisationService) Create(ctx context.Context, req domain.OrganisationCreation) (*domain.Organisation, error) {
	if _, err := s.orgRepo.FindByName(ctx, req.Name); err == nil {
		return nil, ErrOrganisationNameInUse
	} else if !errors.Is(err, store.ErrOrganisationNotFound) {
		return nil, fmt.Errorf("checking organisation name: %w", err)
	}

	org := &domain.Organisation{
		Name: req.Name,
		Type: req.Type,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		if errors.Is(err, store.ErrDuplicateOrganisationName) {
			return nil, ErrOrganisationNameInUse
		}
		return nil, fmt.Errorf("creating organisation: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyOrganisationCreated, domain.OrganisationCreatedEvent{
		OrganisationID: org.ID.String(),
		Name:           org.Name,
		OccurredAt:     time.Now().UTC(),
	})
	return org, nil
}

// Retrieve returns the organisation with the given id, or nil when absent.
// Absence is an empty result, not an error; the caller decides how to
// surface it.
func (s *OrganisationService) Retrieve(ctx context.Context, id uuid.UUID) (*domain.Organisation, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrOrganisationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieving organisation: %w", err)
	}
	return org, nil
}

// Delete removes the organisation with the given id. Deleting an absent
// organisation is a no-op.
func (s *OrganisationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orgRepo.DeleteByID(ctx, id)
}

func (s *OrganisationService) publish(ctx context.Context, routingKey string, body interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, domain.RefDataExchange, routingKey, body); err != nil {
		log.Printf("Failed to publish %s event: %v", routingKey, err)
	}
}
