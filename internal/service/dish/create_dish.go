package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// CreateDish creates a dish owned by the authenticated user together with its
// food entries, in one transaction.
func (s *Service) CreateDish(ctx context.Context, input CreateDishInput) (*domain.DishView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	for _, f := range input.Foods {
		if err := s.checkFoodVisible(ctx, userID, f.FoodID); err != nil {
			return nil, fmt.Errorf("food %s: %w", f.FoodID, err)
		}
	}

	var (
		dish    *domain.Dish
		entries []domain.DishFood
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		dish, err = s.dishes.Create(txCtx, domain.Dish{
			OwnerID:     &userID,
			Name:        domain.CleanName(input.Name),
			TotalWeight: input.TotalWeight,
			ImageID:     input.ImageID,
		})
		if err != nil {
			return fmt.Errorf("create dish: %w", err)
		}

		entries = make([]domain.DishFood, 0, len(input.Foods))
		for _, f := range input.Foods {
			entry := domain.DishFood{DishID: dish.ID, FoodID: f.FoodID, Weight: f.Weight}
			if err := s.dishes.AddFood(txCtx, entry); err != nil {
				return fmt.Errorf("add food %s: %w", f.FoodID, err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	n, err := s.nutrition.ResolveDishNutrition(ctx, dish.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve dish nutrition: %w", err)
	}

	s.log.InfoContext(ctx, "dish created",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", dish.ID.String()),
		slog.Int("foods", len(entries)),
	)

	return &domain.DishView{Dish: *dish, Foods: entries, Nutrition: n}, nil
}
