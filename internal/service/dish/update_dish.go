package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// UpdateDish changes the name, total weight or image of a dish.
func (s *Service) UpdateDish(ctx context.Context, input UpdateDishInput) (*domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	current, err := s.owned(ctx, userID, input.DishID)
	if err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}

	params := domain.DishUpdateParams{TotalWeight: input.TotalWeight, ImageID: input.ImageID}
	if input.Name != nil {
		name := domain.CleanName(*input.Name)
		params.Name = &name
	}

	shrinking := input.TotalWeight != nil && *input.TotalWeight < current.TotalWeight
	var d *domain.Dish
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if shrinking && !s.allowOverConsumption {
			maxUsed, err := s.dishes.MaxMealWeight(txCtx, input.DishID)
			if err != nil {
				return err
			}
			if *input.TotalWeight < maxUsed {
				return domain.NewValidationError("total_weight",
					fmt.Sprintf("a meal already uses %g g of this dish", maxUsed))
			}
		}

		var err error
		d, err = s.dishes.Update(txCtx, input.DishID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update dish: %w", err)
	}

	s.log.InfoContext(ctx, "dish updated",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", d.ID.String()),
	)
	return d, nil
}

// DeleteDish removes a dish and its entries.
// Returns domain.ErrConflict while a meal uses the dish.
func (s *Service) DeleteDish(ctx context.Context, dishID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, dishID); err != nil {
		return fmt.Errorf("get dish: %w", err)
	}

	if err := s.dishes.Delete(ctx, dishID); err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}

	s.log.InfoContext(ctx, "dish deleted",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", dishID.String()),
	)
	return nil
}
