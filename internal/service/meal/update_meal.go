package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// UpdateMealName renames a custom meal. Other meals are named after their
// type and cannot be renamed.
func (s *Service) UpdateMealName(ctx context.Context, mealID uuid.UUID, name string) (*domain.Meal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	name = domain.CleanName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len(name) > maxNameLen {
		return nil, domain.NewValidationError("name", fmt.Sprintf("max %d characters", maxNameLen))
	}

	m, err := s.owned(ctx, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	if m.MealTypeID != domain.MealTypeCustom {
		return nil, domain.NewValidationError("name", "only custom meals can be renamed")
	}

	updated, err := s.meals.UpdateName(ctx, mealID, name)
	if err != nil {
		return nil, fmt.Errorf("update meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal renamed",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", mealID.String()),
	)
	return updated, nil
}

// DeleteMeal removes a meal and its entries.
func (s *Service) DeleteMeal(ctx context.Context, mealID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, mealID); err != nil {
		return fmt.Errorf("get meal: %w", err)
	}

	if err := s.meals.Delete(ctx, mealID); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal deleted",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", mealID.String()),
	)
	return nil
}
