package food

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// CreateFood creates a food owned by the authenticated user together with its
// nutrition records. A food given only macros gets no calorie record: its
// calories are derived on read.
func (s *Service) CreateFood(ctx context.Context, input CreateFoodInput) (*domain.FoodView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err := s.create(ctx, &userID, input)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "food created",
		slog.String("user_id", userID.String()),
		slog.String("food_id", v.ID.String()),
		slog.String("name", v.Name),
	)
	return v, nil
}

// create inserts the food and its records in one transaction.
// ownerID nil creates a global food.
func (s *Service) create(ctx context.Context, ownerID *uuid.UUID, input CreateFoodInput) (*domain.FoodView, error) {
	var (
		food  *domain.Food
		facts domain.FoodFacts
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		food, err = s.foods.Create(txCtx, domain.Food{
			OwnerID:    ownerID,
			Name:       trimName(input.Name),
			IsExternal: input.IsExternal,
		})
		if err != nil {
			return fmt.Errorf("create food: %w", err)
		}
		facts.FoodID = food.ID

		if input.Macros != nil {
			rec, err := s.nutrients.Upsert(txCtx, domain.NutrientRecord{FoodID: food.ID, Macros: input.Macros.toDomain()})
			if err != nil {
				return fmt.Errorf("create nutrients: %w", err)
			}
			facts.Macros = &rec.Macros
		}

		if input.Calories != nil {
			rec, err := s.calories.Upsert(txCtx, domain.CalorieRecord{FoodID: food.ID, Calories: *input.Calories})
			if err != nil {
				return fmt.Errorf("create calories: %w", err)
			}
			facts.Calories = &rec.Calories
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	v := view(*food, facts)
	return &v, nil
}
