/**
 * @description
 * This file implements the data access layer for organisations. It provides
 * a clean interface for the application logic to interact with the
 * `organisations` table.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5/pgxpool: The PostgreSQL driver.
 * - The service's internal domain package for the Organisation model.
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

// PostgresOrganisationRepository is the PostgreSQL implementation of the
// OrganisationRepository.
type PostgresOrganisationRepository struct {
	db *pgxpool.Pool
}

// NewPostgresOrganisationRepository creates a new PostgresOrganisationRepository.
func NewPostgresOrganisationRepository(db *pgxpool.Pool) *PostgresOrganisationRepository {
	return &PostgresOrganisationRepository{db: db}
}

// Create inserts a new organisation and fills in the generated id and timestamps.
func (r *PostgresOrganisationRepository) Create(ctx context.Context, org *domain.Organisation) error {
	query := `
        INSERT INTO organisations (name, organisation_type)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, org.Name, org.Type).
		Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOrganisationName
		}
		return fmt.Errorf("inserting organisation: %w", err)
	}
	return nil
}

// FindByID retrieves an organisation by its identifier.
func (r *PostgresOrganisationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Organisation, error) {
	query := `
        SELECT id, name, organisation_type, created_at, updated_at
        FROM organisations
        WHERE id = $1
    `
	var org domain.Organisation
	err := r.db.QueryRow(ctx, query, id).
		Scan(&org.ID, &org.Name, &org.Type, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("querying organisation by id: %w", err)
	}
	return &org, nil
}

// FindByName retrieves an organisation by its unique name.
func (r *PostgresOrganisationRepository) FindByName(ctx context.Context, name string) (*domain.Organisation, error) {
	query := `
        SELECT id, name, organisation_type, created_at, updated_at
        FROM organisations
        WHERE name = $1
    `
	var org domain.Organisation
	err := r.db.QueryRow(ctx, query, name).
		Scan(&org.ID, &org.Name, &org.Type, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("querying organisation by name: %w", err)
	}
	return &org, nil
}

// DeleteByID removes an organisation. Deleting an absent id is not an error.
func (r *PostgresOrganisationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM organisations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting organisation: %w", err)
	}
	return nil
}
