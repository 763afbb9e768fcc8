package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urbanest/rental-search/api/internal/entity"
)

// ErrSavedSearchNotFound indicates no saved search exists for the lookup.
var ErrSavedSearchNotFound = errors.New("saved search not found")

// SavedSearchesRepository persists named filter sets per renter.
type SavedSearchesRepository interface {
	Create(ctx context.Context, userID uuid.UUID, name string, filters json.RawMessage) (*entity.SavedSearch, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SavedSearch, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.SavedSearch, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

const savedSearchColumns = `id, user_id, name, filters, created_at, updated_at`

// PGXSavedSearchesRepository implements SavedSearchesRepository using pgx.
type PGXSavedSearchesRepository struct {
	pool pgxPool
}

// NewPGXSavedSearchesRepository wires a pgx backed repository.
func NewPGXSavedSearchesRepository(pool *pgxpool.Pool) *PGXSavedSearchesRepository {
	return &PGXSavedSearchesRepository{pool: pool}
}

// Create stores a named filter set. Filters are kept as the composed JSON
// document so re-running skips extraction entirely.
func (r *PGXSavedSearchesRepository) Create(ctx context.Context, userID uuid.UUID, name string, filters json.RawMessage) (*entity.SavedSearch, error) {
	if name == "" {
		return nil, fmt.Errorf("saved search name must not be empty")
	}
	if len(filters) == 0 {
		filters = json.RawMessage("{}")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO saved_searches (user_id, name, filters)
        VALUES ($1, $2, $3::jsonb)
        RETURNING `+savedSearchColumns+`
    `, userID, name, string(filters))

	search, err := scanSavedSearch(row)
	if err != nil {
		return nil, fmt.Errorf("insert saved search: %w", err)
	}
	return search, nil
}

// ListByUser returns a renter's saved searches, newest first.
func (r *PGXSavedSearchesRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SavedSearch, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+savedSearchColumns+` FROM saved_searches WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}
	defer rows.Close()

	var searches []entity.SavedSearch
	for rows.Next() {
		search, err := scanSavedSearch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved search row: %w", err)
		}
		searches = append(searches, *search)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved searches: %w", err)
	}
	return searches, nil
}

// FindByID fetches a single saved search scoped to its owner.
func (r *PGXSavedSearchesRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.SavedSearch, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+savedSearchColumns+` FROM saved_searches WHERE id = $1 AND user_id = $2`, id, userID)

	search, err := scanSavedSearch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSavedSearchNotFound
		}
		return nil, fmt.Errorf("query saved search: %w", err)
	}
	return search, nil
}

// Delete removes a saved search scoped to its owner.
func (r *PGXSavedSearchesRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete saved search: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrSavedSearchNotFound
	}
	return nil
}

func scanSavedSearch(row pgx.Row) (*entity.SavedSearch, error) {
	var (
		search  entity.SavedSearch
		filters []byte
	)
	if err := row.Scan(&search.ID, &search.UserID, &search.Name, &filters, &search.CreatedAt, &search.UpdatedAt); err != nil {
		return nil, err
	}
	if len(filters) > 0 {
		search.Filters = json.RawMessage(filters)
	} else {
		search.Filters = json.RawMessage("{}")
	}
	return &search, nil
}
