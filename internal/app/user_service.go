/**
 * @description
 * This file contains the business logic for professional users, including the
 * assignment relation between a user and its set of payment accounts. The
 * assign/unassign operations are the one place with real state-transition
 * logic: each (user, account) pair is either assigned or not, assign is
 * rejected when the pair is already assigned, unassign when it is not.
 *
 * @notes
 * - Both sides of the pair must exist before a transition is attempted; a
 *   missing user or account is reported with its own error so callers can
 *   tell the cases apart.
 * - The composite primary key on account_assignments backs the
 *   already-assigned check, so two concurrent assigns for the same pair
 *   cannot both succeed.
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

// ProfessionalUserService provides methods for managing professional users
// and their payment-account assignments.
type ProfessionalUserService struct {
	userRepo    store.ProfessionalUserRepository
	accountRepo store.PaymentAccountRepository
	publisher   rabbitmq.Publisher
}

// NewProfessionalUserService creates a new instance of ProfessionalUserService.
func NewProfessionalUserService(userRepo store.ProfessionalUserRepository, accountRepo store.PaymentAccountRepository, publisher rabbitmq.Publisher) *ProfessionalUserService {
	return &ProfessionalUserService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
	}
}

// Create persists a new professional user with an empty assignment set. It
// fails with ErrEmailAlreadyInUse when a user with the requested email exists,
// and with ErrUserIDAlreadyInUse when the business user id is taken.
func (s *ProfessionalUserService) Create(ctx context.Context, req domain.ProfessionalUserCreation) (*domain.ProfessionalUser, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailAlreadyInUse
	} else if !errors.Is(err, store.ErrProfessionalUserNotFound) {
		return nil, fmt.Errorf("checking user email: %w", err)
	}

	user := &domain.ProfessionalUser{
		UserID:         req.UserID,
		FirstName:      req.FirstName,
		Surname:        req.Surname,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		OrganisationID: req.OrganisationID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateUserEmail):
			return nil, ErrEmailAlreadyInUse
		case errors.Is(err, store.ErrDuplicateUserID):
			return nil, ErrUserIDAlreadyInUse
		}
		return nil, fmt.Errorf("creating professional user: %w", err)
	}
	user.PaymentAccounts = []domain.PaymentAccount{}

	s.publish(ctx, domain.RoutingKeyUserCreated, domain.ProfessionalUserCreatedEvent{
		UserID:         user.UserID,
		Email:          user.Email,
		OrganisationID: user.OrganisationID.String(),
		OccurredAt:     time.Now().UTC(),
	})
	return user, nil
}

// Retrieve returns the user with the given business user id, with their
// current assignment set resolved, or nil when absent.
func (s *ProfessionalUserService) Retrieve(ctx context.Context, userID string) (*domain.ProfessionalUser, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfessionalUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieving professional user: %w", err)
	}
	if user.PaymentAccounts, err = s.userRepo.ListAssignedAccounts(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("resolving assignment set: %w", err)
	}
	return user, nil
}

// Delete removes the user with the given business user id. Deleting an absent
// user is a no-op.
func (s *ProfessionalUserService) Delete(ctx context.Context, userID string) error {
	return s.userRepo.DeleteByUserID(ctx, userID)
}

// AssignPaymentAccount adds the payment account to the user's assignment set
// and returns the updated user. The transition is rejected with
// ErrAccountAlreadyAssigned when the pair is already assigned; assignment is
// deliberately not idempotent.
func (s *ProfessionalUserService) AssignPaymentAccount(ctx context.Context, userID string, accountID uuid.UUID) (*domain.ProfessionalUser, error) {
	user, account, err := s.resolvePair(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.userRepo.IsAccountAssigned(ctx, user.ID, account.ID)
	if err != nil {
		return nil, fmt.Errorf("checking assignment: %w", err)
	}
	if assigned {
		return nil, ErrAccountAlreadyAssigned
	}

	if err := s.userRepo.AssignAccount(ctx, user.ID, account.ID); err != nil {
		if errors.Is(err, store.ErrAssignmentExists) {
			return nil, ErrAccountAlreadyAssigned
		}
		return nil, fmt.Errorf("persisting assignment: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyAccountAssigned, domain.AccountAssignmentEvent{
		UserID:     user.UserID,
		PbaNumber:  account.PbaNumber,
		OccurredAt: time.Now().UTC(),
	})
	return s.withAssignments(ctx, user)
}

// UnassignPaymentAccount removes the payment account from the user's
// assignment set and returns the updated user. The transition is rejected
// with ErrAccountNotAssigned when the pair is not currently assigned.
func (s *ProfessionalUserService) UnassignPaymentAccount(ctx context.Context, userID string, accountID uuid.UUID) (*domain.ProfessionalUser, error) {
	user, account, err := s.resolvePair(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UnassignAccount(ctx, user.ID, account.ID); err != nil {
		if errors.Is(err, store.ErrAssignmentNotFound) {
			return nil, ErrAccountNotAssigned
		}
		return nil, fmt.Errorf("removing assignment: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyAccountUnassigned, domain.AccountAssignmentEvent{
		UserID:     user.UserID,
		PbaNumber:  account.PbaNumber,
		OccurredAt: time.Now().UTC(),
	})
	return s.withAssignments(ctx, user)
}

// RetrieveAccountsForUser returns the payment accounts currently assigned to
// the user with the given business user id. Callers supply the id; for the
// authenticated "my accounts" read the transport layer resolves the caller's
// identity first.
func (s *ProfessionalUserService) RetrieveAccountsForUser(ctx context.Context, userID string) ([]domain.PaymentAccount, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfessionalUserNotFound) {
			return nil, ErrProfessionalUserDoesNotExist
		}
		return nil, fmt.Errorf("retrieving professional user: %w", err)
	}
	return s.userRepo.ListAssignedAccounts(ctx, user.ID)
}

// resolvePair loads both sides of a (user, account) pair, reporting which
// side is missing.
func (s *ProfessionalUserService) resolvePair(ctx context.Context, userID string, accountID uuid.UUID) (*domain.ProfessionalUser, *domain.PaymentAccount, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfessionalUserNotFound) {
			return nil, nil, ErrProfessionalUserDoesNotExist
		}
		return nil, nil, fmt.Errorf("resolving professional user: %w", err)
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrPaymentAccountNotFound) {
			return nil, nil, ErrPaymentAccountDoesNotExist
		}
		return nil, nil, fmt.Errorf("resolving payment account: %w", err)
	}
	return user, account, nil
}

func (s *ProfessionalUserService) withAssignments(ctx context.Context, user *domain.ProfessionalUser) (*domain.ProfessionalUser, error) {
	accounts, err := s.userRepo.ListAssignedAccounts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("resolving assignment set: %w", err)
	}
	user.PaymentAccounts = accounts
	return user, nil
}

func (s *ProfessionalUserService) publish(ctx context.Context, routingKey string, body interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, domain.RefDataExchange, routingKey, body); err != nil {
		log.Printf("Failed to publish %s event: %v", routingKey, err)
	}
}
