package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// GetMeal returns one of the user's meals with its dishes and nutrition.
func (s *Service) GetMeal(ctx context.Context, mealID uuid.UUID) (*domain.MealView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.owned(ctx, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}

	entries, err := s.meals.ListDishes(ctx, mealID)
	if err != nil {
		return nil, fmt.Errorf("list meal dishes: %w", err)
	}

	n, err := s.nutrition.ResolveMealNutrition(ctx, mealID)
	if err != nil {
		return nil, fmt.Errorf("resolve meal nutrition: %w", err)
	}

	return &domain.MealView{Meal: *m, Dishes: entries, Nutrition: n}, nil
}

// ListMeals returns the user's meals created in [From, To), oldest first.
func (s *Service) ListMeals(ctx context.Context, input ListMealsInput) ([]domain.MealView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meals, err := s.meals.ListBetween(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return s.enrich(ctx, meals)
}

// FindMealsByName returns the user's meals with the given name, newest first.
func (s *Service) FindMealsByName(ctx context.Context, name string) ([]domain.MealView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	name = domain.CleanName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	meals, err := s.meals.ListByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return s.enrich(ctx, meals)
}

// ListMealTypes returns every meal type.
func (s *Service) ListMealTypes(ctx context.Context) ([]domain.MealType, error) {
	return s.meals.ListMealTypes(ctx)
}

// enrich attaches entries and batch-resolved nutrition to meals.
func (s *Service) enrich(ctx context.Context, meals []domain.Meal) ([]domain.MealView, error) {
	if len(meals) == 0 {
		return []domain.MealView{}, nil
	}

	ids := make([]uuid.UUID, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}

	entries, err := s.meals.ListDishesByMealIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list meal dishes: %w", err)
	}
	byMeal := make(map[uuid.UUID][]domain.MealDish, len(meals))
	for _, e := range entries {
		byMeal[e.MealID] = append(byMeal[e.MealID], e)
	}

	values, err := s.nutrition.MealNutritionMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve meal nutrition: %w", err)
	}

	views := make([]domain.MealView, len(meals))
	for i, m := range meals {
		dishes := byMeal[m.ID]
		if dishes == nil {
			dishes = []domain.MealDish{}
		}
		views[i] = domain.MealView{Meal: m, Dishes: dishes, Nutrition: values[i]}
	}
	return views, nil
}
