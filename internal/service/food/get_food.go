package food

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// GetFood returns a food visible to the user with its resolved values.
func (s *Service) GetFood(ctx context.Context, foodID uuid.UUID) (*domain.FoodView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f, err := s.visible(ctx, userID, foodID)
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	facts, err := s.factsOf(ctx, foodID)
	if err != nil {
		return nil, fmt.Errorf("get food facts: %w", err)
	}

	v := view(*f, facts)
	return &v, nil
}

// ListFoods returns the user's foods followed by global foods, each with its
// resolved values.
func (s *Service) ListFoods(ctx context.Context) ([]domain.FoodView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	foods, err := s.foods.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	if len(foods) == 0 {
		return []domain.FoodView{}, nil
	}

	ids := make([]uuid.UUID, len(foods))
	for i, f := range foods {
		ids[i] = f.ID
	}
	facts, err := s.facts.FoodFactsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get food facts: %w", err)
	}
	byID := make(map[uuid.UUID]domain.FoodFacts, len(facts))
	for _, f := range facts {
		byID[f.FoodID] = f
	}

	views := make([]domain.FoodView, len(foods))
	for i, f := range foods {
		views[i] = view(f, byID[f.ID])
	}
	return views, nil
}
