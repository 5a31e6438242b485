// Package composition reads the Food -> Dish -> Meal composition graph joined
// with the nutrition facts of every food. It is read-only: each method issues
// a single query and assembles the graph in memory so the resolver can walk it
// in one pass.
package composition

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides composition graph reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new composition repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const foodFactsSQL = `
SELECT f.id, c.calories, n.protein, n.fat, n.carbohydrate
FROM foods f
LEFT JOIN calories c ON c.food_id = f.id
LEFT JOIN nutrients n ON n.food_id = f.id
WHERE f.id = ANY($1::uuid[])`

const dishGraphSQL = `
SELECT d.id, d.total_weight,
       df.food_id, df.weight,
       c.calories, n.protein, n.fat, n.carbohydrate
FROM dishes d
LEFT JOIN dish_foods df ON df.dish_id = d.id
LEFT JOIN calories c ON c.food_id = df.food_id
LEFT JOIN nutrients n ON n.food_id = df.food_id
WHERE d.id = ANY($1::uuid[])
ORDER BY d.id, df.food_id`

const mealGraphSelect = `
SELECT m.id, m.owner_id, m.created_at,
       md.dish_id, md.weight, d.total_weight,
       df.food_id, df.weight,
       c.calories, n.protein, n.fat, n.carbohydrate
FROM meals m
LEFT JOIN meal_dishes md ON md.meal_id = m.id
LEFT JOIN dishes d ON d.id = md.dish_id
LEFT JOIN dish_foods df ON df.dish_id = md.dish_id
LEFT JOIN calories c ON c.food_id = df.food_id
LEFT JOIN nutrients n ON n.food_id = df.food_id`

const mealGraphOrder = `
ORDER BY m.created_at, m.id, md.dish_id, df.food_id`

const mealGraphByIDsSQL = mealGraphSelect + `
WHERE m.id = ANY($1::uuid[])` + mealGraphOrder

const mealGraphBetweenSQL = mealGraphSelect + `
WHERE m.owner_id = $1 AND m.created_at >= $2 AND m.created_at < $3` + mealGraphOrder

// ---------------------------------------------------------------------------
// Foods
// ---------------------------------------------------------------------------

// FoodFactsByIDs returns the stored nutrition facts of the given foods.
// Foods that do not exist are absent from the result.
func (r *Repo) FoodFactsByIDs(ctx context.Context, foodIDs []uuid.UUID) ([]domain.FoodFacts, error) {
	if len(foodIDs) == 0 {
		return []domain.FoodFacts{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, foodFactsSQL, foodIDs)
	if err != nil {
		return nil, fmt.Errorf("get food facts: %w", err)
	}
	defer rows.Close()

	result := []domain.FoodFacts{}
	for rows.Next() {
		var (
			id    uuid.UUID
			facts factColumns
		)
		if err := rows.Scan(&id, &facts.calories, &facts.protein, &facts.fat, &facts.carbohydrate); err != nil {
			return nil, fmt.Errorf("scan food facts: %w", err)
		}
		result = append(result, facts.toDomain(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get food facts: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Dishes
// ---------------------------------------------------------------------------

// DishGraphsByIDs returns the composition graph of each existing dish.
// Dishes that do not exist are absent from the result.
func (r *Repo) DishGraphsByIDs(ctx context.Context, dishIDs []uuid.UUID) ([]domain.DishGraph, error) {
	if len(dishIDs) == 0 {
		return []domain.DishGraph{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, dishGraphSQL, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("get dish graphs: %w", err)
	}
	defer rows.Close()

	var (
		graphs []domain.DishGraph
		index  = make(map[uuid.UUID]int)
	)
	for rows.Next() {
		var (
			dishID      uuid.UUID
			totalWeight float64
			foodID      *uuid.UUID
			foodWeight  *float64
			facts       factColumns
		)
		err := rows.Scan(&dishID, &totalWeight, &foodID, &foodWeight,
			&facts.calories, &facts.protein, &facts.fat, &facts.carbohydrate)
		if err != nil {
			return nil, fmt.Errorf("scan dish graph: %w", err)
		}

		i, ok := index[dishID]
		if !ok {
			i = len(graphs)
			index[dishID] = i
			graphs = append(graphs, domain.DishGraph{DishID: dishID, TotalWeight: totalWeight})
		}

		// LEFT JOIN row of a dish without foods.
		if foodID == nil || foodWeight == nil {
			continue
		}
		graphs[i].Foods = append(graphs[i].Foods, domain.FoodPortion{
			Facts:  facts.toDomain(*foodID),
			Weight: *foodWeight,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get dish graphs: %w", err)
	}

	if graphs == nil {
		graphs = []domain.DishGraph{}
	}
	return graphs, nil
}

// ---------------------------------------------------------------------------
// Meals
// ---------------------------------------------------------------------------

// MealGraphsByIDs returns the full graph of each existing meal.
func (r *Repo) MealGraphsByIDs(ctx context.Context, mealIDs []uuid.UUID) ([]domain.MealGraph, error) {
	if len(mealIDs) == 0 {
		return []domain.MealGraph{}, nil
	}
	return r.mealGraphs(ctx, mealGraphByIDsSQL, mealIDs)
}

// MealGraphsBetween returns the full graph of every meal of ownerID created in
// [from, to), ordered by creation time.
func (r *Repo) MealGraphsBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.MealGraph, error) {
	return r.mealGraphs(ctx, mealGraphBetweenSQL, ownerID, from, to)
}

func (r *Repo) mealGraphs(ctx context.Context, sql string, args ...any) ([]domain.MealGraph, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get meal graphs: %w", err)
	}
	defer rows.Close()

	type dishKey struct{ meal, dish uuid.UUID }

	var (
		graphs    []domain.MealGraph
		mealIndex = make(map[uuid.UUID]int)
		dishIndex = make(map[dishKey]int)
	)
	for rows.Next() {
		var (
			mealID          uuid.UUID
			ownerID         uuid.UUID
			createdAt       time.Time
			dishID          *uuid.UUID
			dishWeight      *float64
			dishTotalWeight *float64
			foodID          *uuid.UUID
			foodWeight      *float64
			facts           factColumns
		)
		err := rows.Scan(&mealID, &ownerID, &createdAt,
			&dishID, &dishWeight, &dishTotalWeight,
			&foodID, &foodWeight,
			&facts.calories, &facts.protein, &facts.fat, &facts.carbohydrate)
		if err != nil {
			return nil, fmt.Errorf("scan meal graph: %w", err)
		}

		mi, ok := mealIndex[mealID]
		if !ok {
			mi = len(graphs)
			mealIndex[mealID] = mi
			graphs = append(graphs, domain.MealGraph{MealID: mealID, OwnerID: ownerID, CreatedAt: createdAt})
		}

		if dishID == nil || dishWeight == nil || dishTotalWeight == nil {
			continue
		}

		key := dishKey{meal: mealID, dish: *dishID}
		di, ok := dishIndex[key]
		if !ok {
			di = len(graphs[mi].Dishes)
			dishIndex[key] = di
			graphs[mi].Dishes = append(graphs[mi].Dishes, domain.DishPortion{
				Dish:   domain.DishGraph{DishID: *dishID, TotalWeight: *dishTotalWeight},
				Weight: *dishWeight,
			})
		}

		if foodID == nil || foodWeight == nil {
			continue
		}
		portion := &graphs[mi].Dishes[di]
		portion.Dish.Foods = append(portion.Dish.Foods, domain.FoodPortion{
			Facts:  facts.toDomain(*foodID),
			Weight: *foodWeight,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get meal graphs: %w", err)
	}

	if graphs == nil {
		graphs = []domain.MealGraph{}
	}
	return graphs, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

// factColumns holds the nullable calorie and nutrient columns of one food.
type factColumns struct {
	calories     *float64
	protein      *float64
	fat          *float64
	carbohydrate *float64
}

func (c factColumns) toDomain(foodID uuid.UUID) domain.FoodFacts {
	facts := domain.FoodFacts{FoodID: foodID, Calories: c.calories}
	// nutrients columns are NOT NULL, so protein is NULL only without a row.
	if c.protein != nil {
		facts.Macros = &domain.Macros{
			Protein:      *c.protein,
			Fat:          deref(c.fat),
			Carbohydrate: deref(c.carbohydrate),
		}
	}
	return facts
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
