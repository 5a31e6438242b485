// Package meal implements the Meal repository using PostgreSQL.
// It owns the meal_dishes composition table (Meal-contains-Dish) and reads the
// seeded meal_types table.
package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const mealColumns = `id, owner_id, meal_type_id, name, created_at, updated_at`

const createSQL = `
INSERT INTO meals (owner_id, meal_type_id, name)
VALUES ($1, $2, $3)
RETURNING ` + mealColumns

const getByIDSQL = `SELECT ` + mealColumns + ` FROM meals WHERE id = $1`

// Half-open range [from, to).
const listBetweenSQL = `
SELECT ` + mealColumns + `
FROM meals
WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
ORDER BY created_at, id`

const listByNameSQL = `
SELECT ` + mealColumns + `
FROM meals
WHERE owner_id = $1 AND lower(name) = lower($2)
ORDER BY created_at DESC`

const existsOfTypeSQL = `
SELECT EXISTS (
    SELECT 1 FROM meals
    WHERE owner_id = $1 AND meal_type_id = $2 AND created_at >= $3 AND created_at < $4
)`

const updateNameSQL = `
UPDATE meals SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + mealColumns

const deleteSQL = `DELETE FROM meals WHERE id = $1`

const addDishSQL = `INSERT INTO meal_dishes (meal_id, dish_id, weight) VALUES ($1, $2, $3)`

const updateDishWeightSQL = `UPDATE meal_dishes SET weight = $3 WHERE meal_id = $1 AND dish_id = $2`

const removeDishSQL = `DELETE FROM meal_dishes WHERE meal_id = $1 AND dish_id = $2`

const listDishesSQL = `
SELECT meal_id, dish_id, weight
FROM meal_dishes
WHERE meal_id = ANY($1::uuid[])
ORDER BY meal_id, dish_id`

const touchSQL = `UPDATE meals SET updated_at = now() WHERE id = $1`

const getMealTypeSQL = `SELECT id, name FROM meal_types WHERE id = $1`

const listMealTypesSQL = `SELECT id, name FROM meal_types ORDER BY id`

// ---------------------------------------------------------------------------
// Meal types
// ---------------------------------------------------------------------------

// GetMealType returns a meal type or domain.ErrNotFound.
func (r *Repo) GetMealType(ctx context.Context, id int) (*domain.MealType, error) {
	var mt domain.MealType
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getMealTypeSQL, id).Scan(&mt.ID, &mt.Name)
	if err != nil {
		return nil, postgres.MapError(err, "meal_type", id)
	}
	return &mt, nil
}

// ListMealTypes returns all meal types ordered by id.
func (r *Repo) ListMealTypes(ctx context.Context) ([]domain.MealType, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listMealTypesSQL)
	if err != nil {
		return nil, fmt.Errorf("list meal types: %w", err)
	}
	defer rows.Close()

	types := []domain.MealType{}
	for rows.Next() {
		var mt domain.MealType
		if err := rows.Scan(&mt.ID, &mt.Name); err != nil {
			return nil, fmt.Errorf("scan meal type: %w", err)
		}
		types = append(types, mt)
	}
	return types, rows.Err()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a meal by primary key regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id)

	m, err := scanMeal(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal", id)
	}
	return &m, nil
}

// ListBetween returns the owner's meals created in [from, to), oldest first.
func (r *Repo) ListBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Meal, error) {
	return r.list(ctx, listBetweenSQL, ownerID, from, to)
}

// ListByName returns the owner's meals with the given name (case-insensitive).
func (r *Repo) ListByName(ctx context.Context, ownerID uuid.UUID, name string) ([]domain.Meal, error) {
	return r.list(ctx, listByNameSQL, ownerID, name)
}

// ExistsOfType reports whether the owner already has a meal of mealTypeID in [from, to).
func (r *Repo) ExistsOfType(ctx context.Context, ownerID uuid.UUID, mealTypeID int, from, to time.Time) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, existsOfTypeSQL, ownerID, mealTypeID, from, to).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check meal type usage: %w", err)
	}
	return exists, nil
}

// ListDishes returns the composition entries of a meal.
func (r *Repo) ListDishes(ctx context.Context, mealID uuid.UUID) ([]domain.MealDish, error) {
	return r.ListDishesByMealIDs(ctx, []uuid.UUID{mealID})
}

// ListDishesByMealIDs returns composition entries for several meals.
func (r *Repo) ListDishesByMealIDs(ctx context.Context, mealIDs []uuid.UUID) ([]domain.MealDish, error) {
	if len(mealIDs) == 0 {
		return []domain.MealDish{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listDishesSQL, mealIDs)
	if err != nil {
		return nil, fmt.Errorf("list meal dishes: %w", err)
	}
	defer rows.Close()

	entries := []domain.MealDish{}
	for rows.Next() {
		var e domain.MealDish
		if err := rows.Scan(&e.MealID, &e.DishID, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan meal dish: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meal dishes: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a meal without composition entries.
func (r *Repo) Create(ctx context.Context, meal domain.Meal) (*domain.Meal, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, createSQL, meal.OwnerID, meal.MealTypeID, meal.Name)

	m, err := scanMeal(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal", meal.Name)
	}
	return &m, nil
}

// UpdateName renames a meal.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Meal, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateNameSQL, id, name)

	m, err := scanMeal(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal", id)
	}
	return &m, nil
}

// Delete removes a meal and, by cascade, its composition entries.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapDeleteError(err, "meal", id)
	}
	return postgres.CheckAffected(tag, "meal", id)
}

// AddDish inserts a composition entry.
// Returns domain.ErrAlreadyExists if the dish is already in the meal.
func (r *Repo) AddDish(ctx context.Context, entry domain.MealDish) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, addDishSQL, entry.MealID, entry.DishID, entry.Weight); err != nil {
		return postgres.MapError(err, "meal_dish", entry.DishID)
	}
	return r.touch(ctx, q, entry.MealID)
}

// UpdateDishWeight changes the grams of a dish consumed in a meal.
func (r *Repo) UpdateDishWeight(ctx context.Context, mealID, dishID uuid.UUID, weight float64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, updateDishWeightSQL, mealID, dishID, weight)
	if err != nil {
		return postgres.MapError(err, "meal_dish", dishID)
	}
	if err := postgres.CheckAffected(tag, "meal_dish", dishID); err != nil {
		return err
	}
	return r.touch(ctx, q, mealID)
}

// RemoveDish deletes a composition entry.
func (r *Repo) RemoveDish(ctx context.Context, mealID, dishID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, removeDishSQL, mealID, dishID)
	if err != nil {
		return postgres.MapError(err, "meal_dish", dishID)
	}
	if err := postgres.CheckAffected(tag, "meal_dish", dishID); err != nil {
		return err
	}
	return r.touch(ctx, q, mealID)
}

func (r *Repo) touch(ctx context.Context, q postgres.Querier, mealID uuid.UUID) error {
	if _, err := q.Exec(ctx, touchSQL, mealID); err != nil {
		return postgres.MapError(err, "meal", mealID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.Meal, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	return meals, nil
}

func scanMeal(row pgx.Row) (domain.Meal, error) {
	var m domain.Meal
	err := row.Scan(&m.ID, &m.OwnerID, &m.MealTypeID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
