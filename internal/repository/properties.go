package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPropertyNotFound indicates no listing exists for the given identifier.
var ErrPropertyNotFound = errors.New("property not found")

// PropertiesRepository exposes the listing lookups the contact flow needs.
// Search itself goes through the listing engine, not this repository.
type PropertiesRepository interface {
	OwnerPhone(ctx context.Context, propertyID uuid.UUID) (string, error)
}

// PGXPropertiesRepository implements PropertiesRepository using pgx.
type PGXPropertiesRepository struct {
	pool pgxPool
}

// NewPGXPropertiesRepository wires a pgx backed repository.
func NewPGXPropertiesRepository(pool *pgxpool.Pool) *PGXPropertiesRepository {
	return &PGXPropertiesRepository{pool: pool}
}

// OwnerPhone returns the listed owner's phone number for a property.
func (r *PGXPropertiesRepository) OwnerPhone(ctx context.Context, propertyID uuid.UUID) (string, error) {
	row := r.pool.QueryRow(ctx, `SELECT owner_phone FROM properties WHERE id = $1`, propertyID)

	var phone sql.NullString
	if err := row.Scan(&phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrPropertyNotFound
		}
		return "", fmt.Errorf("query owner phone: %w", err)
	}
	if !phone.Valid || phone.String == "" {
		return "", ErrPropertyNotFound
	}
	return phone.String, nil
}
