package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexref/pup-service/internal/domain"
	"github.com/lexref/pup-service/internal/store"
)

// organisationRepoFake is an in-memory OrganisationRepository.
type organisationRepoFake struct {
	byID   map[uuid.UUID]*domain.Organisation
	byName map[string]*domain.Organisation

	createErr error
}

func newOrganisationRepoFake() *organisationRepoFake {
	return &organisationRepoFake{
		byID:   map[uuid.UUID]*domain.Organisation{},
		byName: map[string]*domain.Organisation{},
	}
}

func (f *organisationRepoFake) Create(ctx context.Context, org *domain.Organisation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byName[org.Name]; ok {
		return store.ErrDuplicateOrganisationName
	}
	org.ID = uuid.New()
	f.byID[org.ID] = org
	f.byName[org.Name] = org
	return nil
}

func (f *organisationRepoFake) FindByID(ctx context.Context, id uuid.UUID) (*domain.Organisation, error) {
	org, ok := f.byID[id]
	if !ok {
		return nil, store.ErrOrganisationNotFound
	}
	return org, nil
}

func (f *organisationRepoFake) FindByName(ctx context.Context, name string) (*domain.Organisation, error) {
	org, ok := f.byName[name]
	if !ok {
		return nil, store.ErrOrganisationNotFound
	}
	return org, nil
}

func (f *organisationRepoFake) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if org, ok := f.byID[id]; ok {
		delete(f.byName, org.Name)
		delete(f.byID, id)
	}
	return nil
}

// accountRepoFake is an in-memory PaymentAccountRepository.
type accountRepoFake struct {
	byID  map[uuid.UUID]*domain.PaymentAccount
	byPba map[string]*domain.PaymentAccount
}

func newAccountRepoFake() *accountRepoFake {
	return &accountRepoFake{
		byID:  map[uuid.UUID]*domain.PaymentAccount{},
		byPba: map[string]*domain.PaymentAccount{},
	}
}

func (f *accountRepoFake) Create(ctx context.Context, account *domain.PaymentAccount) error {
	if _, ok := f.byPba[account.PbaNumber]; ok {
		return store.ErrDuplicatePbaNumber
	}
	account.ID = uuid.New()
	f.byID[account.ID] = account
	f.byPba[account.PbaNumber] = account
	return nil
}

func (f *accountRepoFake) FindByID(ctx context.Context, id uuid.UUID) (*domain.PaymentAccount, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, store.ErrPaymentAccountNotFound
	}
	return account, nil
}

func (f *accountRepoFake) FindByPbaNumber(ctx context.Context, pbaNumber string) (*domain.PaymentAccount, error) {
	account, ok := f.byPba[pbaNumber]
	if !ok {
		return nil, store.ErrPaymentAccountNotFound
	}
	return account, nil
}

func (f *accountRepoFake) DeleteByPbaNumber(ctx context.Context, pbaNumber string) error {
	if account, ok := f.byPba[pbaNumber]; ok {
		delete(f.byID, account.ID)
		delete(f.byPba, pbaNumber)
	}
	return nil
}

// userRepoFake is an in-memory ProfessionalUserRepository. Assignment rows
// are resolved against the account fake, mirroring the join in the real store.
type userRepoFake struct {
	byUserID    map[string]*domain.ProfessionalUser
	byEmail     map[string]*domain.ProfessionalUser
	assignments map[uuid.UUID]map[uuid.UUID]bool
	accounts    *accountRepoFake

	assignErr error
}

func newUserRepoFake(accounts *accountRepoFake) *userRepoFake {
	return &userRepoFake{
		byUserID:    map[string]*domain.ProfessionalUser{},
		byEmail:     map[string]*domain.ProfessionalUser{},
		assignments: map[uuid.UUID]map[uuid.UUID]bool{},
		accounts:    accounts,
	}
}

func (f *userRepoFake) Create(ctx context.Context, user *domain.ProfessionalUser) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return store.ErrDuplicateUserEmail
	}
	if _, ok := f.byUserID[user.UserID]; ok {
		return store.ErrDuplicateUserID
	}
	user.ID = uuid.New()
	f.byUserID[user.UserID] = user
	f.byEmail[user.Email] = user
	f.assignments[user.ID] = map[uuid.UUID]bool{}
	return nil
}

func (f *userRepoFake) FindByUserID(ctx context.Context, userID string) (*domain.ProfessionalUser, error) {
	user, ok := f.byUserID[userID]
	if !ok {
		return nil, store.ErrProfessionalUserNotFound
	}
	return user, nil
}

func (f *userRepoFake) FindByEmail(ctx context.Context, email string) (*domain.ProfessionalUser, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrProfessionalUserNotFound
	}
	return user, nil
}

func (f *userRepoFake) DeleteByUserID(ctx context.Context, userID string) error {
	if user, ok := f.byUserID[userID]; ok {
		delete(f.byEmail, user.Email)
		delete(f.assignments, user.ID)
		delete(f.byUserID, userID)
	}
	return nil
}

func (f *userRepoFake) ListAssignedAccounts(ctx context.Context, id uuid.UUID) ([]domain.PaymentAccount, error) {
	accounts := []domain.PaymentAccount{}
	for accountID := range f.assignments[id] {
		if account, ok := f.accounts.byID[accountID]; ok {
			accounts = append(accounts, *account)
		}
	}
	return accounts, nil
}

func (f *userRepoFake) IsAccountAssigned(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	return f.assignments[id][accountID], nil
}

func (f *userRepoFake) AssignAccount(ctx context.Context, id, accountID uuid.UUID) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	if f.assignments[id][accountID] {
		return store.ErrAssignmentExists
	}
	if f.assignments[id] == nil {
		f.assignments[id] = map[uuid.UUID]bool{}
	}
	f.assignments[id][accountID] = true
	return nil
}

func (f *userRepoFake) UnassignAccount(ctx context.Context, id, accountID uuid.UUID) error {
	if !f.assignments[id][accountID] {
		return store.ErrAssignmentNotFound
	}
	delete(f.assignments[id], accountID)
	return nil
}

// fixture wires the three services over shared in-memory repositories.
type fixture struct {
	orgRepo     *organisationRepoFake
	userRepo    *userRepoFake
	accountRepo *accountRepoFake

	organisations *OrganisationService
	users         *ProfessionalUserService
	accounts      *PaymentAccountService
}

func newFixture() *fixture {
	orgRepo := newOrganisationRepoFake()
	accountRepo := newAccountRepoFake()
	userRepo := newUserRepoFake(accountRepo)

	users := NewProfessionalUserService(userRepo, accountRepo, nil)
	return &fixture{
		orgRepo:       orgRepo,
		userRepo:      userRepo,
		accountRepo:   accountRepo,
		organisations: NewOrganisationService(orgRepo, nil),
		users:         users,
		accounts:      NewPaymentAccountService(accountRepo, users, nil),
	}
}
