/**
 * @description
 * This file defines the interfaces for the data access layer (repositories)
 * and the sentinel errors they surface. Defining interfaces allows for
 * dependency injection and easy stubbing in tests, promoting a loosely
 * coupled architecture.
 *
 * @notes
 * - Any component that needs to interact with the database should depend on
 *   these interfaces, not on the concrete PostgreSQL implementations.
 * - Duplicate-key sentinels exist so that a uniqueness race lost at the
 *   storage layer surfaces as the same rejection as the application-level
 *   pre-check, never as silent duplication.
 */
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lexref/pup-service/internal/domain"
)

var (
	ErrOrganisationNotFound     = errors.New("organisation not found")
	ErrProfessionalUserNotFound = errors.New("professional user not found")
	ErrPaymentAccountNotFound   = errors.New("payment account not found")
	ErrAddressTypeNotFound      = errors.New("address type not found")

	ErrDuplicateOrganisationName = errors.New("organisation name already exists")
	ErrDuplicateUserEmail        = errors.New("user email already exists")
	ErrDuplicateUserID           = errors.New("user id already exists")
	ErrDuplicatePbaNumber        = errors.New("pba number already exists")

	ErrAssignmentExists   = errors.New("account assignment already exists")
	ErrAssignmentNotFound = errors.New("account assignment not found")
)

// OrganisationRepository defines the contract for organisation persistence.
type OrganisationRepository interface {
	Create(ctx context.Context, org *domain.Organisation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Organisation, error)
	FindByName(ctx context.Context, name string) (*domain.Organisation, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ProfessionalUserRepository defines the contract for user persistence and
// for the user's payment-account assignment set.
type ProfessionalUserRepository interface {
	Create(ctx context.Context, user *domain.ProfessionalUser) error
	FindByUserID(ctx context.Context, userID string) (*domain.ProfessionalUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.ProfessionalUser, error)
	DeleteByUserID(ctx context.Context, userID string) error

	ListAssignedAccounts(ctx context.Context, id uuid.UUID) ([]domain.PaymentAccount, error)
	IsAccountAssigned(ctx context.Context, id, accountID uuid.UUID) (bool, error)
	AssignAccount(ctx context.Context, id, accountID uuid.UUID) error
	UnassignAccount(ctx context.Context, id, accountID uuid.UUID) error
}

// PaymentAccountRepository defines the contract for payment account persistence.
type PaymentAccountRepository interface {
	Create(ctx context.Context, account *domain.PaymentAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PaymentAccount, error)
	FindByPbaNumber(ctx context.Context, pbaNumber string) (*domain.PaymentAccount, error)
	DeleteByPbaNumber(ctx context.Context, pbaNumber string) error
}

// AddressTypeRepository defines the contract for the address-type lookup table.
type AddressTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AddressType, error)
	List(ctx context.Context) ([]domain.AddressType, error)
}
