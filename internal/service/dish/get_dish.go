package dish

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// GetDish returns a dish visible to the user with its entries and nutrition.
func (s *Service) GetDish(ctx context.Context, dishID uuid.UUID) (*domain.DishView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.visible(ctx, userID, dishID)
	if err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}

	entries, err := s.dishes.ListFoods(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("list dish foods: %w", err)
	}

	n, err := s.nutrition.ResolveDishNutrition(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("resolve dish nutrition: %w", err)
	}

	return &domain.DishView{Dish: *d, Foods: entries, Nutrition: n}, nil
}

// ListDishes returns the user's dishes, newest first, followed by global
// dishes. Nutrition of all dishes is resolved in batches.
func (s *Service) ListDishes(ctx context.Context) ([]domain.DishView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	dishes, err := s.dishes.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	if len(dishes) == 0 {
		return []domain.DishView{}, nil
	}

	ids := make([]uuid.UUID, len(dishes))
	for i, d := range dishes {
		ids[i] = d.ID
	}

	entries, err := s.dishes.ListFoodsByDishIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list dish foods: %w", err)
	}
	byDish := make(map[uuid.UUID][]domain.DishFood, len(dishes))
	for _, e := range entries {
		byDish[e.DishID] = append(byDish[e.DishID], e)
	}

	values, err := s.nutrition.DishNutritionMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve dish nutrition: %w", err)
	}

	views := make([]domain.DishView, len(dishes))
	for i, d := range dishes {
		foods := byDish[d.ID]
		if foods == nil {
			foods = []domain.DishFood{}
		}
		views[i] = domain.DishView{Dish: d, Foods: foods, Nutrition: values[i]}
	}
	return views, nil
}
