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

// PostgresAddressTypeRepository is the PostgreSQL implementation of the
// AddressTypeRepository. Address types are seeded data; the core only reads them.
type PostgresAddressTypeRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAddressTypeRepository creates a new PostgresAddressTypeRepository.
func NewPostgresAddressTypeRepository(db *pgxpool.Pool) *PostgresAddressTypeRepository {
	return &PostgresAddressTypeRepository{db: db}
}

// FindByID retrieves an address type by its identifier.
func (r *PostgresAddressTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AddressType, error) {
	var at domain.AddressType
	err := r.db.QueryRow(ctx, `SELECT id, name FROM address_types WHERE id = $1`, id).
		Scan(&at.ID, &at.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAddressTypeNotFound
		}
		return nil, fmt.Errorf("querying address type: %w", err)
	}
	return &at, nil
}

// List returns all address types ordered by name.
func (r *PostgresAddressTypeRepository) List(ctx context.Context) ([]domain.AddressType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM address_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying address types: %w", err)
	}
	defer rows.Close()

	types := []domain.AddressType{}
	for rows.Next() {
		var at domain.AddressType
		if err := rows.Scan(&at.ID, &at.Name); err != nil {
			return nil, fmt.Errorf("scanning address type: %w", err)
		}
		types = append(types, at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading address types: %w", err)
	}
	return types, nil
}
