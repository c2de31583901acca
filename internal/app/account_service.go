/**
 * @description
 * This file contains the business logic for payment accounts. The service
 * enforces PBA number uniqueness on creation and is the entry point for
 * assign/unassign requests named by PBA number: it resolves the account and
 * delegates the mutation to the professional user service, which owns the
 * assignment set.
 */
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lexref/pup-service/internal/domain"
	"github.com/lexref/pup-service/internal/store"
	"github.com/lexref/pup-service/pkg/rabbitmq"
)

// PaymentAccountService provides methods for managing payment accounts.
type PaymentAccountService struct {
	accountRepo store.PaymentAccountRepository
	users       *ProfessionalUserService
	publisher   rabbitmq.Publisher
}

// NewPaymentAccountService creates a new instance of PaymentAccountService.
func NewPaymentAccountService(accountRepo store.PaymentAccountRepository, users *ProfessionalUserService, publisher rabbitmq.Publisher) *PaymentAccountService {
	return &PaymentAccountService{
		accountRepo: accountRepo,
		users:       users,
		publisher:   publisher,
	}
}

// Create persists a new payment account. It fails with
// ErrPbaNumberAlreadyInUse when an account with the requested PBA number
// exists; the unique constraint on pba_number turns a concurrent duplicate
// creation into the same rejection.
func (s *PaymentAccountService) Create(ctx context.Context, req domain.PaymentAccountCreation) (*domain.PaymentAccount, error) {
	if _, err := s.accountRepo.FindByPbaNumber(ctx, req.PbaNumber); err == nil {
		return nil, ErrPbaNumberAlreadyInUse
	} else if !errors.Is(err, store.ErrPaymentAccountNotFound) {
		return nil, fmt.Errorf("checking pba number: %w", err)
	}

	account := &domain.PaymentAccount{
		PbaNumber:      req.PbaNumber,
		OrganisationID: req.OrganisationID,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrDuplicatePbaNumber) {
			return nil, ErrPbaNumberAlreadyInUse
		}
		return nil, fmt.Errorf("creating payment account: %w", err)
	}

	if s.publisher != nil {
		event := domain.PaymentAccountCreatedEvent{
			PbaNumber:      account.PbaNumber,
			OrganisationID: account.OrganisationID.String(),
			OccurredAt:     time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, domain.RefDataExchange, domain.RoutingKeyAccountCreated, event); err != nil {
			log.Printf("Failed to publish %s event: %v", domain.RoutingKeyAccountCreated, err)
		}
	}
	return account, nil
}

// Retrieve returns the payment account with the given PBA number, or nil
// when absent.
func (s *PaymentAccountService) Retrieve(ctx context.Context, pbaNumber string) (*domain.PaymentAccount, error) {
	account, err := s.accountRepo.FindByPbaNumber(ctx, pbaNumber)
	if err != nil {
		if errors.Is(err, store.ErrPaymentAccountNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieving payment account: %w", err)
	}
	return account, nil
}

// Delete removes the payment account with the given PBA number. Deleting an
// absent account is a no-op.
func (s *PaymentAccountService) Delete(ctx context.Context, pbaNumber string) error {
	return s.accountRepo.DeleteByPbaNumber(ctx, pbaNumber)
}

// RetrieveForUser returns the accounts currently assigned to the user with
// the given business user id.
func (s *PaymentAccountService) RetrieveForUser(ctx context.Context, userID string) ([]domain.PaymentAccount, error) {
	return s.users.RetrieveAccountsForUser(ctx, userID)
}

// Assign assigns the account named by PBA number to the user named in the
// assignment request. The mutation itself lives on the user's assignment set.
func (s *PaymentAccountService) Assign(ctx context.Context, pbaNumber string, assignment domain.PaymentAccountAssignment) (*domain.ProfessionalUser, error) {
	account, err := s.accountRepo.FindByPbaNumber(ctx, pbaNumber)
	if err != nil {
		if errors.Is(err, store.ErrPaymentAccountNotFound) {
			return nil, ErrPaymentAccountDoesNotExist
		}
		return nil, fmt.Errorf("resolving payment account: %w", err)
	}
	return s.users.AssignPaymentAccount(ctx, assignment.UserID, account.ID)
}

// Unassign removes the account named by PBA number from the assignment set of
// the user named in the assignment request.
func (s *PaymentAccountService) Unassign(ctx context.Context, pbaNumber string, assignment domain.PaymentAccountAssignment) (*domain.ProfessionalUser, error) {
	account, err := s.accountRepo.FindByPbaNumber(ctx, pbaNumber)
	if err != nil {
		if errors.Is(err, store.ErrPaymentAccountNotFound) {
			return nil, ErrPaymentAccountDoesNotExist
		}
		return nil, fmt.Errorf("resolving payment account: %w", err)
	}
	return s.users.UnassignPaymentAccount(ctx, assignment.UserID, account.ID)
}
