package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/internal/service/nutrition"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// CreateMeal records a meal of the authenticated user with the dishes eaten.
// Every type except custom may occur at most once per calendar day and takes
// its name from the type.
func (s *Service) CreateMeal(ctx context.Context, input CreateMealInput) (*domain.MealView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mt, err := s.meals.GetMealType(ctx, input.MealTypeID)
	if err != nil {
		return nil, fmt.Errorf("get meal type: %w", err)
	}

	name := mt.Name
	if mt.IsCustom() {
		name = domain.CleanName(*input.Name)
	}

	for n, d := range input.Dishes {
		if err := s.checkDish(ctx, userID, d.DishID, d.Weight, fmt.Sprintf("dishes[%d].weight", n)); err != nil {
			return nil, fmt.Errorf("dish %s: %w", d.DishID, err)
		}
	}

	var (
		meal    *domain.Meal
		entries []domain.MealDish
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if !mt.IsCustom() {
			now := s.now()
			exists, err := s.meals.ExistsOfType(txCtx, userID, mt.ID,
				nutrition.DayStart(now, s.loc), nutrition.NextDayStart(now, s.loc))
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%s already recorded today: %w", mt.Name, domain.ErrConflict)
			}
		}

		var err error
		meal, err = s.meals.Create(txCtx, domain.Meal{OwnerID: userID, MealTypeID: mt.ID, Name: name})
		if err != nil {
			return fmt.Errorf("create meal: %w", err)
		}

		entries = make([]domain.MealDish, 0, len(input.Dishes))
		for _, d := range input.Dishes {
			entry := domain.MealDish{MealID: meal.ID, DishID: d.DishID, Weight: d.Weight}
			if err := s.meals.AddDish(txCtx, entry); err != nil {
				return fmt.Errorf("add dish %s: %w", d.DishID, err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	n, err := s.nutrition.ResolveMealNutrition(ctx, meal.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve meal nutrition: %w", err)
	}

	s.log.InfoContext(ctx, "meal created",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", meal.ID.String()),
		slog.Int("meal_type_id", mt.ID),
		slog.Int("dishes", len(entries)),
	)

	return &domain.MealView{Meal: *meal, Dishes: entries, Nutrition: n}, nil
}
