/**
 * @description
 * This file implements the data access layer for professional users and for
 * the user/payment-account assignment relation. The assignment set is stored
 * in the `account_assignments` join table whose composite primary key
 * (user_id, payment_account_id) makes a duplicate assignment a constraint
 * violation rather than a silent second row.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5/pgxpool: The PostgreSQL driver.
 * - The service's internal domain package for the ProfessionalUser model.
 */
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexref/pup-service/internal/domain"
)

// PostgresProfessionalUserRepository is the PostgreSQL implementation of the
// ProfessionalUserRepository.
type PostgresProfessionalUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProfessionalUserRepository creates a new PostgresProfessionalUserRepository.
func NewPostgresProfessionalUserRepository(db *pgxpool.Pool) *PostgresProfessionalUserRepository {
	return &PostgresProfessionalUserRepository{db: db}
}

// Create inserts a new professional user and fills in the generated id and
// timestamps.
func (r *PostgresProfessionalUserRepository) Create(ctx context.Context, user *domain.ProfessionalUser) error {
	query := `
        INSERT INTO professional_users (user_id, first_name, surname, email, phone_number, organisation_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		user.UserID,
		user.FirstName,
		user.Surname,
		user.Email,
		user.PhoneNumber,
		user.OrganisationID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		switch uniqueViolationConstraint(err) {
		case "professional_users_email_key":
			return ErrDuplicateUserEmail
		case "professional_users_user_id_key":
			return ErrDuplicateUserID
		}
		return fmt.Errorf("inserting professional user: %w", err)
	}
	return nil
}

// FindByUserID retrieves a professional user by their business user id.
func (r *PostgresProfessionalUserRepository) FindByUserID(ctx context.Context, userID string) (*domain.ProfessionalUser, error) {
	return r.findOne(ctx, `WHERE user_id = $1`, userID)
}

// FindByEmail retrieves a professional user by their unique email.
func (r *PostgresProfessionalUserRepository) FindByEmail(ctx context.Context, email string) (*domain.ProfessionalUser, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *PostgresProfessionalUserRepository) findOne(ctx context.Context, where string, arg any) (*domain.ProfessionalUser, error) {
	query := `
        SELECT id, user_id, first_name, surname, email, phone_number, organisation_id, created_at, updated_at
        FROM professional_users ` + where
	var user domain.ProfessionalUser
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.UserID,
		&user.FirstName,
		&user.Surname,
		&user.Email,
		&user.PhoneNumber,
		&user.OrganisationID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessionalUserNotFound
		}
		return nil, fmt.Errorf("querying professional user: %w", err)
	}
	return &user, nil
}

// DeleteByUserID removes a professional user by their business user id.
// Deleting an absent user is not an error. Assignment rows referencing the
// user are removed by the ON DELETE CASCADE on account_assignments.
func (r *PostgresProfessionalUserRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM professional_users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting professional user: %w", err)
	}
	return nil
}

// ListAssignedAccounts returns the payment accounts currently assigned to the
// user identified by its internal id.
func (r *PostgresProfessionalUserRepository) ListAssignedAccounts(ctx context.Context, id uuid.UUID) ([]domain.PaymentAccount, error) {
	query := `
        SELECT pa.id, pa.pba_number, pa.organisation_id, pa.created_at, pa.updated_at
        FROM payment_accounts pa
        JOIN account_assignments aa ON aa.payment_account_id = pa.id
        WHERE aa.user_id = $1
    `
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("querying assigned accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.PaymentAccount{}
	for rows.Next() {
		var account domain.PaymentAccount
		if err := rows.Scan(&account.ID, &account.PbaNumber, &account.OrganisationID, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning assigned account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading assigned accounts: %w", err)
	}
	return accounts, nil
}

// IsAccountAssigned reports whether the account is in the user's assignment set.
func (r *PostgresProfessionalUserRepository) IsAccountAssigned(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM account_assignments
            WHERE user_id = $1 AND payment_account_id = $2
        )
    `
	var assigned bool
	if err := r.db.QueryRow(ctx, query, id, accountID).Scan(&assigned); err != nil {
		return false, fmt.Errorf("checking account assignment: %w", err)
	}
	return assigned, nil
}

// AssignAccount adds the account to the user's assignment set. A concurrent
// duplicate insert surfaces as ErrAssignmentExists via the composite primary key.
func (r *PostgresProfessionalUserRepository) AssignAccount(ctx context.Context, id, accountID uuid.UUID) error {
	query := `
        INSERT INTO account_assignments (user_id, payment_account_id)
        VALUES ($1, $2)
    `
	if _, err := r.db.Exec(ctx, query, id, accountID); err != nil {
		if isUniqueViolation(err) {
			return ErrAssignmentExists
		}
		return fmt.Errorf("inserting account assignment: %w", err)
	}
	return nil
}

// UnassignAccount removes the account from the user's assignment set and
// returns ErrAssignmentNotFound when no such row exists.
func (r *PostgresProfessionalUserRepository) UnassignAccount(ctx context.Context, id, accountID uuid.UUID) error {
	query := `
        DELETE FROM account_assignments
        WHERE user_id = $1 AND payment_account_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("deleting account assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
