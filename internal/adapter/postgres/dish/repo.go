// Package dish implements the Dish repository using PostgreSQL.
// It owns the dish_foods composition table (Dish-contains-Food).
package dish

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides dish persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dish repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const dishColumns = `id, owner_id, name, total_weight, image_id, created_at, updated_at`

const createSQL = `
INSERT INTO dishes (owner_id, name, total_weight, image_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + dishColumns

const getByIDSQL = `SELECT ` + dishColumns + ` FROM dishes WHERE id = $1`

// Own dishes first, newest first.
const listVisibleSQL = `
SELECT ` + dishColumns + `
FROM dishes
WHERE owner_id = $1 OR owner_id IS NULL
ORDER BY owner_id IS NULL, created_at DESC`

const updateSQL = `
UPDATE dishes
SET name = COALESCE($2, name),
    total_weight = COALESCE($3, total_weight),
    image_id = COALESCE($4, image_id),
    updated_at = now()
WHERE id = $1
RETURNING ` + dishColumns

const deleteSQL = `DELETE FROM dishes WHERE id = $1`

const addFoodSQL = `INSERT INTO dish_foods (dish_id, food_id, weight) VALUES ($1, $2, $3)`

const updateFoodWeightSQL = `UPDATE dish_foods SET weight = $3 WHERE dish_id = $1 AND food_id = $2`

const removeFoodSQL = `DELETE FROM dish_foods WHERE dish_id = $1 AND food_id = $2`

const listFoodsSQL = `
SELECT dish_id, food_id, weight
FROM dish_foods
WHERE dish_id = ANY($1::uuid[])
ORDER BY dish_id, food_id`

const maxMealWeightSQL = `SELECT COALESCE(max(weight), 0) FROM meal_dishes WHERE dish_id = $1`

const touchSQL = `UPDATE dishes SET updated_at = now() WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dish by primary key regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id)

	d, err := scanDish(row)
	if err != nil {
		return nil, postgres.MapError(err, "dish", id)
	}
	return &d, nil
}

// ListVisible returns the user's dishes followed by global dishes.
func (r *Repo) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Dish, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listVisibleSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	return dishes, nil
}

// ListFoods returns the composition entries of a dish.
func (r *Repo) ListFoods(ctx context.Context, dishID uuid.UUID) ([]domain.DishFood, error) {
	return r.ListFoodsByDishIDs(ctx, []uuid.UUID{dishID})
}

// ListFoodsByDishIDs returns composition entries for several dishes, grouped
// by dish id.
func (r *Repo) ListFoodsByDishIDs(ctx context.Context, dishIDs []uuid.UUID) ([]domain.DishFood, error) {
	if len(dishIDs) == 0 {
		return []domain.DishFood{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listFoodsSQL, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("list dish foods: %w", err)
	}
	defer rows.Close()

	entries := []domain.DishFood{}
	for rows.Next() {
		var e domain.DishFood
		if err := rows.Scan(&e.DishID, &e.FoodID, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan dish food: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dish foods: %w", err)
	}

	return entries, nil
}

// MaxMealWeight returns the heaviest portion of the dish recorded by any meal,
// or 0 when no meal uses it.
func (r *Repo) MaxMealWeight(ctx context.Context, dishID uuid.UUID) (float64, error) {
	var w float64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, maxMealWeightSQL, dishID).Scan(&w)
	if err != nil {
		return 0, fmt.Errorf("get max meal weight: %w", err)
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a dish without composition entries.
func (r *Repo) Create(ctx context.Context, dish domain.Dish) (*domain.Dish, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, createSQL, dish.OwnerID, dish.Name, dish.TotalWeight, dish.ImageID)

	d, err := scanDish(row)
	if err != nil {
		return nil, postgres.MapError(err, "dish", dish.Name)
	}
	return &d, nil
}

// Update applies a partial update; nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DishUpdateParams) (*domain.Dish, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, updateSQL, id, params.Name, params.TotalWeight, params.ImageID)

	d, err := scanDish(row)
	if err != nil {
		return nil, postgres.MapError(err, "dish", id)
	}
	return &d, nil
}

// Delete removes a dish and, by cascade, its composition entries.
// Returns domain.ErrConflict if a meal still uses the dish.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapDeleteError(err, "dish", id)
	}
	return postgres.CheckAffected(tag, "dish", id)
}

// AddFood inserts a composition entry.
// Returns domain.ErrAlreadyExists if the food is already in the dish and
// domain.ErrNotFound if the food or dish does not exist.
func (r *Repo) AddFood(ctx context.Context, entry domain.DishFood) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, addFoodSQL, entry.DishID, entry.FoodID, entry.Weight); err != nil {
		return postgres.MapError(err, "dish_food", entry.FoodID)
	}
	return r.touch(ctx, q, entry.DishID)
}

// UpdateFoodWeight changes the grams of a food inside a dish.
func (r *Repo) UpdateFoodWeight(ctx context.Context, dishID, foodID uuid.UUID, weight float64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, updateFoodWeightSQL, dishID, foodID, weight)
	if err != nil {
		return postgres.MapError(err, "dish_food", foodID)
	}
	if err := postgres.CheckAffected(tag, "dish_food", foodID); err != nil {
		return err
	}
	return r.touch(ctx, q, dishID)
}

// RemoveFood deletes a composition entry.
func (r *Repo) RemoveFood(ctx context.Context, dishID, foodID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, removeFoodSQL, dishID, foodID)
	if err != nil {
		return postgres.MapError(err, "dish_food", foodID)
	}
	if err := postgres.CheckAffected(tag, "dish_food", foodID); err != nil {
		return err
	}
	return r.touch(ctx, q, dishID)
}

func (r *Repo) touch(ctx context.Context, q postgres.Querier, dishID uuid.UUID) error {
	if _, err := q.Exec(ctx, touchSQL, dishID); err != nil {
		return postgres.MapError(err, "dish", dishID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanDish(row pgx.Row) (domain.Dish, error) {
	var d domain.Dish
	err := row.Scan(&d.ID, &d.OwnerID, &d.Name, &d.TotalWeight, &d.ImageID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}
