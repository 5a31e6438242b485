package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// AddFood adds a food to a dish.
// Returns domain.ErrAlreadyExists if the dish already contains the food.
func (s *Service) AddFood(ctx context.Context, input FoodWeightInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, input.DishID); err != nil {
		return fmt.Errorf("get dish: %w", err)
	}
	if err := s.checkFoodVisible(ctx, userID, input.FoodID); err != nil {
		return fmt.Errorf("get food: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.dishes.AddFood(txCtx, domain.DishFood{
			DishID: input.DishID,
			FoodID: input.FoodID,
			Weight: input.Weight,
		})
	})
	if err != nil {
		return fmt.Errorf("add food: %w", err)
	}

	s.log.InfoContext(ctx, "food added to dish",
		slog.String("dish_id", input.DishID.String()),
		slog.String("food_id", input.FoodID.String()),
	)
	return nil
}

// UpdateFoodWeight changes the grams of a food inside a dish.
func (s *Service) UpdateFoodWeight(ctx context.Context, input FoodWeightInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, input.DishID); err != nil {
		return fmt.Errorf("get dish: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.dishes.UpdateFoodWeight(txCtx, input.DishID, input.FoodID, input.Weight)
	})
	if err != nil {
		return fmt.Errorf("update food weight: %w", err)
	}
	return nil
}

// RemoveFood removes a food from a dish.
func (s *Service) RemoveFood(ctx context.Context, dishID, foodID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, dishID); err != nil {
		return fmt.Errorf("get dish: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.dishes.RemoveFood(txCtx, dishID, foodID)
	})
	if err != nil {
		return fmt.Errorf("remove food: %w", err)
	}

	s.log.InfoContext(ctx, "food removed from dish",
		slog.String("dish_id", dishID.String()),
		slog.String("food_id", foodID.String()),
	)
	return nil
}
