package food

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// SetNutrients creates or replaces the macros of a food.
func (s *Service) SetNutrients(ctx context.Context, input SetNutrientsInput) (*domain.NutrientRecord, error) {
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

	rec, err := s.nutrients.Upsert(ctx, domain.NutrientRecord{FoodID: input.FoodID, Macros: input.Macros.toDomain()})
	if err != nil {
		return nil, fmt.Errorf("set nutrients: %w", err)
	}

	s.log.InfoContext(ctx, "nutrients set", slog.String("food_id", input.FoodID.String()))
	return rec, nil
}

// SetCalories creates or replaces the explicit calories of a food.
func (s *Service) SetCalories(ctx context.Context, input SetCaloriesInput) (*domain.CalorieRecord, error) {
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

	rec, err := s.calories.Upsert(ctx, domain.CalorieRecord{FoodID: input.FoodID, Calories: input.Calories})
	if err != nil {
		return nil, fmt.Errorf("set calories: %w", err)
	}

	s.log.InfoContext(ctx, "calories set", slog.String("food_id", input.FoodID.String()))
	return rec, nil
}

// DeleteNutrients removes the macros of a food. The food must keep a calorie
// record.
func (s *Service) DeleteNutrients(ctx context.Context, foodID uuid.UUID) error {
	return s.deleteRecord(ctx, foodID, "nutrients",
		func(f domain.FoodFacts) bool { return f.Calories != nil },
		s.nutrients.Delete,
	)
}

// DeleteCalories removes the explicit calories of a food. The food must keep
// a nutrient record.
func (s *Service) DeleteCalories(ctx context.Context, foodID uuid.UUID) error {
	return s.deleteRecord(ctx, foodID, "calories",
		func(f domain.FoodFacts) bool { return f.Macros != nil },
		s.calories.Delete,
	)
}

// deleteRecord removes one nutrition record inside a transaction after
// checking that the other one remains.
func (s *Service) deleteRecord(
	ctx context.Context,
	foodID uuid.UUID,
	kind string,
	otherExists func(domain.FoodFacts) bool,
	del func(ctx context.Context, foodID uuid.UUID) error,
) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, foodID); err != nil {
		return fmt.Errorf("get food: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		facts, err := s.factsOf(txCtx, foodID)
		if err != nil {
			return fmt.Errorf("get food facts: %w", err)
		}
		if !otherExists(facts) {
			return domain.NewValidationError(kind, "cannot remove the last nutrition source of a food")
		}
		if err := del(txCtx, foodID); err != nil {
			return fmt.Errorf("delete %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, kind+" deleted", slog.String("food_id", foodID.String()))
	return nil
}
