// Package calorie implements the Calorie Store: at most one explicit kcal per
// 100 g value per food, independent of the nutrient record.
package calorie

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides calorie persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new calorie repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const upsertSQL = `
INSERT INTO calories (food_id, calories)
VALUES ($1, $2)
ON CONFLICT (food_id) DO UPDATE SET calories = EXCLUDED.calories
RETURNING food_id, calories`

const getSQL = `SELECT food_id, calories FROM calories WHERE food_id = $1`

const deleteSQL = `DELETE FROM calories WHERE food_id = $1`

// Upsert creates or replaces the calorie record of a food.
// Returns domain.ErrNotFound if the food does not exist.
func (r *Repo) Upsert(ctx context.Context, rec domain.CalorieRecord) (*domain.CalorieRecord, error) {
	var out domain.CalorieRecord
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, upsertSQL, rec.FoodID, rec.Calories).
		Scan(&out.FoodID, &out.Calories)
	if err != nil {
		return nil, postgres.MapError(err, "calories", rec.FoodID)
	}
	return &out, nil
}

// GetByFoodID returns the calorie record of a food or domain.ErrNotFound.
func (r *Repo) GetByFoodID(ctx context.Context, foodID uuid.UUID) (*domain.CalorieRecord, error) {
	var out domain.CalorieRecord
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getSQL, foodID).
		Scan(&out.FoodID, &out.Calories)
	if err != nil {
		return nil, postgres.MapError(err, "calories", foodID)
	}
	return &out, nil
}

// Delete removes the calorie record of a food.
func (r *Repo) Delete(ctx context.Context, foodID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, foodID)
	if err != nil {
		return postgres.MapError(err, "calories", foodID)
	}
	return postgres.CheckAffected(tag, "calories", foodID)
}
