package app

import (
	"context"
	"errors"
	"testing"

	"github.com/lexref/pup-service/internal/domain"
)

func TestPaymentAccountCreate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	account, err := f.accounts.Create(ctx, domain.PaymentAccountCreation{PbaNumber: "PBA1010"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if account.PbaNumber != "PBA1010" {
		t.Errorf("Create() pba number = %q", account.PbaNumber)
	}

	if _, err := f.accounts.Create(ctx, domain.PaymentAccountCreation{PbaNumber: "PBA1010"}); !errors.Is(err, ErrPbaNumberAlreadyInUse) {
		t.Errorf("duplicate Create() error = %v, want ErrPbaNumberAlreadyInUse", err)
	}
}

func TestPaymentAccountRetrieveAbsent(t *testing.T) {
	f := newFixture()

	account, err := f.accounts.Retrieve(context.Background(), "PBA0000")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if account != nil {
		t.Errorf("Retrieve() of absent account = %+v, want nil", account)
	}
}

func TestPaymentAccountDeleteIsUnconditional(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.accounts.Create(ctx, domain.PaymentAccountCreation{PbaNumber: "PBA1010"}); err != nil {
		t.Fatalf("seed Create() error = %v", err)
	}
	if err := f.accounts.Delete(ctx, "PBA1010"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.accounts.Delete(ctx, "PBA1010"); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

func TestPaymentAccountAssignByPbaNumber(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.organisations.Create(ctx, domain.OrganisationCreation{Name: "Solicitor Ltd"}); err != nil {
		t.Fatalf("seed organisation: %v", err)
	}
	if _, err := f.users.Create(ctx, domain.ProfessionalUserCreation{UserID: "1", Email: "a@x.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := f.accounts.Create(ctx, domain.PaymentAccountCreation{PbaNumber: "PBA1010"}); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	assignment := domain.PaymentAccountAssignment{UserID: "1"}

	user, err := f.accounts.Assign(ctx, "PBA1010", assignment)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if len(user.PaymentAccounts) != 1 || user.PaymentAccounts[0].PbaNumber != "PBA1010" {
		t.Errorf("assignment set after Assign() = %+v", user.PaymentAccounts)
	}

	if _, err := f.accounts.Assign(ctx, "PBA1010", assignment); !errors.Is(err, ErrAccountAlreadyAssigned) {
		t.Errorf("second Assign() error = %v, want ErrAccountAlreadyAssigned", err)
	}

	accounts, err := f.accounts.RetrieveForUser(ctx, "1")
	if err != nil {
		t.Fatalf("RetrieveForUser() error = %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("RetrieveForUser() = %+v, want one account", accounts)
	}

	user, err = f.accounts.Unassign(ctx, "PBA1010", assignment)
	if err != nil {
		t.Fatalf("Unassign() error = %v", err)
	}
	if len(user.PaymentAccounts) != 0 {
		t.Errorf("assignment set after Unassign() = %+v, want empty", user.PaymentAccounts)
	}

	if _, err := f.accounts.Unassign(ctx, "PBA1010", assignment); !errors.Is(err, ErrAccountNotAssigned) {
		t.Errorf("second Unassign() error = %v, want ErrAccountNotAssigned", err)
	}
}

func TestPaymentAccountAssignUnknownPbaNumber(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.users.Create(ctx, domain.ProfessionalUserCreation{UserID: "1", Email: "a@x.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := f.accounts.Assign(ctx, "PBA0000", domain.PaymentAccountAssignment{UserID: "1"}); !errors.Is(err, ErrPaymentAccountDoesNotExist) {
		t.Errorf("Assign() error = %v, want ErrPaymentAccountDoesNotExist", err)
	}
	if _, err := f.accounts.Unassign(ctx, "PBA0000", domain.PaymentAccountAssignment{UserID: "1"}); !errors.Is(err, ErrPaymentAccountDoesNotExist) {
		t.Errorf("Unassign() error = %v, want ErrPaymentAccountDoesNotExist", err)
	}
}
