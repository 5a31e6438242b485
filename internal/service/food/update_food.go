package food

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// UpdateFood renames a food or changes its external flag.
func (s *Service) UpdateFood(ctx context.Context, input UpdateFoodInput) (*domain.Food, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.owned(ctx, userID, input.FoodID); err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	var name *string
	if input.Name != nil {
		n := trimName(*input.Name)
		name = &n
	}

	f, err := s.foods.Update(ctx, input.FoodID, name, input.IsExternal)
	if err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}

	s.log.InfoContext(ctx, "food updated",
		slog.String("user_id", userID.String()),
		slog.String("food_id", f.ID.String()),
	)
	return f, nil
}

// DeleteFood removes a food and its nutrition records.
// Returns domain.ErrConflict while a dish uses the food.
func (s *Service) DeleteFood(ctx context.Context, foodID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.owned(ctx, userID, foodID); err != nil {
		return fmt.Errorf("get food: %w", err)
	}

	if err := s.foods.Delete(ctx, foodID); err != nil {
		return fmt.Errorf("delete food: %w", err)
	}

	s.log.InfoContext(ctx, "food deleted",
		slog.String("user_id", userID.String()),
		slog.String("food_id", foodID.String()),
	)
	return nil
}
