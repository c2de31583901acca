/**
 * @description
 * This file implements the data access layer for payment accounts. It provides
 * a clean interface for the application logic to interact with the
 * `payment_accounts` table.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5/pgxpool: The PostgreSQL driver.
 * - The service's internal domain package for the PaymentAccount model.
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

// PostgresPaymentAccountRepository is the PostgreSQL implementation of the
// PaymentAccountRepository.
type PostgresPaymentAccountRepository struct {
	db *pgxpool.Pool
}

// NewPostgresPaymentAccountRepository creates a new PostgresPaymentAccountRepository.
func NewPostgresPaymentAccountRepository(db *pgxpool.Pool) *PostgresPaymentAccountRepository {
	return &PostgresPaymentAccountRepository{db: db}
}

// Create inserts a new payment account and fills in the generated id and
// timestamps.
func (r *PostgresPaymentAccountRepository) Create(ctx context.Context, account *domain.PaymentAccount) error {
	query := `
        INSERT INTO payment_accounts (pba_number, organisation_id)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, account.PbaNumber, account.OrganisationID).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePbaNumber
		}
		return fmt.Errorf("inserting payment account: %w", err)
	}
	return nil
}

// FindByID retrieves a payment account by its identifier.
func (r *PostgresPaymentAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PaymentAccount, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByPbaNumber retrieves a payment account by its unique PBA number.
func (r *PostgresPaymentAccountRepository) FindByPbaNumber(ctx context.Context, pbaNumber string) (*domain.PaymentAccount, error) {
	return r.findOne(ctx, `WHERE pba_number = $1`, pbaNumber)
}

func (r *PostgresPaymentAccountRepository) findOne(ctx context.Context, where string, arg any) (*domain.PaymentAccount, error) {
	query := `
        SELECT id, pba_number, organisation_id, created_at, updated_at
        FROM payment_accounts ` + where
	var account domain.PaymentAccount
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.PbaNumber,
		&account.OrganisationID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentAccountNotFound
		}
		return nil, fmt.Errorf("querying payment account: %w", err)
	}
	return &account, nil
}

// DeleteByPbaNumber removes a payment account. Deleting an absent account is
// not an error. Assignment rows referencing the account are removed by the
// ON DELETE CASCADE on account_assignments.
func (r *PostgresPaymentAccountRepository) DeleteByPbaNumber(ctx context.Context, pbaNumber string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM payment_accounts WHERE pba_number = $1`, pbaNumber)
	if err != nil {
		return fmt.Errorf("deleting payment account: %w", err)
	}
	return nil
}
