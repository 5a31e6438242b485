// Package nutrient implements the Nutrient Store: at most one macro record
// (grams per 100 g) per food.
package nutrient

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides nutrient persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new nutrient repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const upsertSQL = `
INSERT INTO nutrients (food_id, protein, fat, carbohydrate)
VALUES ($1, $2, $3, $4)
ON CONFLICT (food_id) DO UPDATE
SET protein = EXCLUDED.protein,
    fat = EXCLUDED.fat,
    carbohydrate = EXCLUDED.carbohydrate
RETURNING food_id, protein, fat, carbohydrate`

const getSQL = `SELECT food_id, protein, fat, carbohydrate FROM nutrients WHERE food_id = $1`

const deleteSQL = `DELETE FROM nutrients WHERE food_id = $1`

// Upsert creates or replaces the nutrient record of a food.
// Returns domain.ErrNotFound if the food does not exist.
func (r *Repo) Upsert(ctx context.Context, rec domain.NutrientRecord) (*domain.NutrientRecord, error) {
	var out domain.NutrientRecord
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, upsertSQL, rec.FoodID, rec.Protein, rec.Fat, rec.Carbohydrate).
		Scan(&out.FoodID, &out.Protein, &out.Fat, &out.Carbohydrate)
	if err != nil {
		return nil, postgres.MapError(err, "nutrients", rec.FoodID)
	}
	return &out, nil
}

// GetByFoodID returns the nutrient record of a food or domain.ErrNotFound.
func (r *Repo) GetByFoodID(ctx context.Context, foodID uuid.UUID) (*domain.NutrientRecord, error) {
	var out domain.NutrientRecord
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getSQL, foodID).
		Scan(&out.FoodID, &out.Protein, &out.Fat, &out.Carbohydrate)
	if err != nil {
		return nil, postgres.MapError(err, "nutrients", foodID)
	}
	return &out, nil
}

// Delete removes the nutrient record of a food.
func (r *Repo) Delete(ctx context.Context, foodID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, foodID)
	if err != nil {
		return postgres.MapError(err, "nutrients", foodID)
	}
	return postgres.CheckAffected(tag, "nutrients", foodID)
}
