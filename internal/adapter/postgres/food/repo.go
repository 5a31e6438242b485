// Package food implements the Food repository using PostgreSQL.
// Nutrition records live in the nutrient and calorie packages.
package food

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides food persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new food repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const foodColumns = `id, owner_id, name, is_external, created_at, updated_at`

const createSQL = `
INSERT INTO foods (owner_id, name, is_external)
VALUES ($1, $2, $3)
RETURNING ` + foodColumns

const getByIDSQL = `SELECT ` + foodColumns + ` FROM foods WHERE id = $1`

// Own foods first, then global ones.
const listVisibleSQL = `
SELECT ` + foodColumns + `
FROM foods
WHERE owner_id = $1 OR owner_id IS NULL
ORDER BY owner_id IS NULL, name`

const updateSQL = `
UPDATE foods
SET name = COALESCE($2, name),
    is_external = COALESCE($3, is_external),
    updated_at = now()
WHERE id = $1
RETURNING ` + foodColumns

const deleteSQL = `DELETE FROM foods WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a food by primary key regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id)

	f, err := scanFood(row)
	if err != nil {
		return nil, postgres.MapError(err, "food", id)
	}
	return &f, nil
}

// ListVisible returns the user's foods followed by global foods.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Food, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listVisibleSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	return foods, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a food and returns the persisted row.
func (r *Repo) Create(ctx context.Context, food domain.Food) (*domain.Food, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL, food.OwnerID, food.Name, food.IsExternal)

	f, err := scanFood(row)
	if err != nil {
		return nil, postgres.MapError(err, "food", food.Name)
	}
	return &f, nil
}

// Update applies a partial update; nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name *string, isExternal *bool) (*domain.Food, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, id, name, isExternal)

	f, err := scanFood(row)
	if err != nil {
		return nil, postgres.MapError(err, "food", id)
	}
	return &f, nil
}

// Delete removes a food together with its nutrition records.
// Returns domain.ErrConflict if a dish still uses the food.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapDeleteError(err, "food", id)
	}
	return postgres.CheckAffected(tag, "food", id)
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanFood(row pgx.Row) (domain.Food, error) {
	var f domain.Food
	err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.IsExternal, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}
