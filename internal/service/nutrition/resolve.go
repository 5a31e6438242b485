package nutrition

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Food
// ---------------------------------------------------------------------------

// ResolveFoodCalories returns the effective kcal per 100 g of a food.
// Fails with domain.ErrNoNutritionData when the food has neither record.
func (s *Service) ResolveFoodCalories(ctx context.Context, foodID uuid.UUID) (float64, error) {
	facts, err := s.foodFacts(ctx, foodID)
	if err != nil {
		return 0, err
	}

	kcal, err := FoodCalories(facts)
	if err != nil {
		return 0, fmt.Errorf("food %s: %w", foodID, err)
	}
	return kcal, nil
}

// ResolveFoodMacros returns the macros per 100 g of a food. The result is nil
// for a food that only has explicit calories: its macros are unknown.
func (s *Service) ResolveFoodMacros(ctx context.Context, foodID uuid.UUID) (*domain.Macros, error) {
	facts, err := s.foodFacts(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !facts.HasData() {
		return nil, fmt.Errorf("food %s: %w", foodID, domain.ErrNoNutritionData)
	}
	return facts.Macros, nil
}

func (s *Service) foodFacts(ctx context.Context, foodID uuid.UUID) (domain.FoodFacts, error) {
	facts, err := s.graph.FoodFactsByIDs(ctx, []uuid.UUID{foodID})
	if err != nil {
		return domain.FoodFacts{}, fmt.Errorf("get food facts: %w", err)
	}
	if len(facts) == 0 {
		return domain.FoodFacts{}, fmt.Errorf("food %s: %w", foodID, domain.ErrNotFound)
	}
	return facts[0], nil
}

// ---------------------------------------------------------------------------
// Dish
// ---------------------------------------------------------------------------

// ResolveDishNutrition returns calories and macros of one unit of a dish.
func (s *Service) ResolveDishNutrition(ctx context.Context, dishID uuid.UUID) (domain.Nutrition, error) {
	graphs, err := s.graph.DishGraphsByIDs(ctx, []uuid.UUID{dishID})
	if err != nil {
		return domain.Nutrition{}, fmt.Errorf("get dish graph: %w", err)
	}
	if len(graphs) == 0 {
		return domain.Nutrition{}, fmt.Errorf("dish %s: %w", dishID, domain.ErrNotFound)
	}
	return DishNutrition(graphs[0]), nil
}

// ResolveDishCalories returns the kcal of one unit of a dish.
func (s *Service) ResolveDishCalories(ctx context.Context, dishID uuid.UUID) (float64, error) {
	n, err := s.ResolveDishNutrition(ctx, dishID)
	if err != nil {
		return 0, err
	}
	return n.Calories, nil
}

// ResolveDishMacros returns the macros of one unit of a dish. Foods without a
// NutrientRecord are left out; use ResolveDishNutrition to see whether any were.
func (s *Service) ResolveDishMacros(ctx context.Context, dishID uuid.UUID) (domain.Macros, error) {
	n, err := s.ResolveDishNutrition(ctx, dishID)
	if err != nil {
		return domain.Macros{}, err
	}
	return n.Macros, nil
}

// ---------------------------------------------------------------------------
// Meal
// ---------------------------------------------------------------------------

// ResolveMealNutrition returns calories and macros of a meal.
func (s *Service) ResolveMealNutrition(ctx context.Context, mealID uuid.UUID) (domain.Nutrition, error) {
	graphs, err := s.graph.MealGraphsByIDs(ctx, []uuid.UUID{mealID})
	if err != nil {
		return domain.Nutrition{}, fmt.Errorf("get meal graph: %w", err)
	}
	if len(graphs) == 0 {
		return domain.Nutrition{}, fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
	}
	return MealNutrition(graphs[0]), nil
}

// ResolveMealCalories returns the kcal of a meal.
func (s *Service) ResolveMealCalories(ctx context.Context, mealID uuid.UUID) (float64, error) {
	n, err := s.ResolveMealNutrition(ctx, mealID)
	if err != nil {
		return 0, err
	}
	return n.Calories, nil
}

// ResolveMealMacros returns the macros of a meal.
func (s *Service) ResolveMealMacros(ctx context.Context, mealID uuid.UUID) (domain.Macros, error) {
	n, err := s.ResolveMealNutrition(ctx, mealID)
	if err != nil {
		return domain.Macros{}, err
	}
	return n.Macros, nil
}
