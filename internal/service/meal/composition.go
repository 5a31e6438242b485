package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// AddDish adds a dish to a meal.
// Returns domain.ErrAlreadyExists if the meal already contains the dish.
func (s *Service) AddDish(ctx context.Context, input DishWeightInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, input.MealID); err != nil {
		return fmt.Errorf("get meal: %w", err)
	}
	if err := s.checkDish(ctx, userID, input.DishID, input.Weight, "weight"); err != nil {
		return fmt.Errorf("dish %s: %w", input.DishID, err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.meals.AddDish(txCtx, domain.MealDish{
			MealID: input.MealID,
			DishID: input.DishID,
			Weight: input.Weight,
		})
	})
	if err != nil {
		return fmt.Errorf("add dish: %w", err)
	}

	s.log.InfoContext(ctx, "dish added to meal",
		slog.String("meal_id", input.MealID.String()),
		slog.String("dish_id", input.DishID.String()),
	)
	return nil
}

// UpdateDishWeight changes the grams of a dish eaten in a meal.
func (s *Service) UpdateDishWeight(ctx context.Context, input DishWeightInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, input.MealID); err != nil {
		return fmt.Errorf("get meal: %w", err)
	}
	if err := s.checkDish(ctx, userID, input.DishID, input.Weight, "weight"); err != nil {
		return fmt.Errorf("dish %s: %w", input.DishID, err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.meals.UpdateDishWeight(txCtx, input.MealID, input.DishID, input.Weight)
	})
	if err != nil {
		return fmt.Errorf("update dish weight: %w", err)
	}
	return nil
}

// RemoveDish removes a dish from a meal.
func (s *Service) RemoveDish(ctx context.Context, mealID, dishID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, mealID); err != nil {
		return fmt.Errorf("get meal: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.meals.RemoveDish(txCtx, mealID, dishID)
	})
	if err != nil {
		return fmt.Errorf("remove dish: %w", err)
	}

	s.log.InfoContext(ctx, "dish removed from meal",
		slog.String("meal_id", mealID.String()),
		slog.String("dish_id", dishID.String()),
	)
	return nil
}
