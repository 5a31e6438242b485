// Package meal manages meals and the dishes eaten in them.
package meal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/internal/service/nutrition"
)

type mealRepo interface {
	GetMealType(ctx context.Context, id int) (*domain.MealType, error)
	ListMealTypes(ctx context.Context) ([]domain.MealType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error)
	ListBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Meal, error)
	ListByName(ctx context.Context, ownerID uuid.UUID, name string) ([]domain.Meal, error)
	ExistsOfType(ctx context.Context, ownerID uuid.UUID, mealTypeID int, from, to time.Time) (bool, error)
	ListDishes(ctx context.Context, mealID uuid.UUID) ([]domain.MealDish, error)
	ListDishesByMealIDs(ctx context.Context, mealIDs []uuid.UUID) ([]domain.MealDish, error)
	Create(ctx context.Context, meal domain.Meal) (*domain.Meal, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Meal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddDish(ctx context.Context, entry domain.MealDish) error
	UpdateDishWeight(ctx context.Context, mealID, dishID uuid.UUID, weight float64) error
	RemoveDish(ctx context.Context, mealID, dishID uuid.UUID) error
}

type dishRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
}

type resolver interface {
	ResolveMealNutrition(ctx context.Context, mealID uuid.UUID) (domain.Nutrition, error)
	MealNutritionMany(ctx context.Context, mealIDs []uuid.UUID) ([]domain.Nutrition, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the service.
type Options struct {
	// AllowOverConsumption accepts meal entries heavier than one unit of the
	// dish. Rejected by default.
	AllowOverConsumption bool
	// Timezone is the IANA name whose calendar days bound "once per day".
	Timezone string
}

// Service provides meal management operations.
type Service struct {
	meals     mealRepo
	dishes    dishRepo
	nutrition resolver
	tx        txManager
	log       *slog.Logger

	allowOverConsumption bool
	loc                  *time.Location
	now                  func() time.Time
}

// NewService creates a new Meal service.
func NewService(
	log *slog.Logger,
	meals mealRepo,
	dishes dishRepo,
	nutritionSvc resolver,
	tx txManager,
	opts Options,
) *Service {
	return &Service{
		meals:                meals,
		dishes:               dishes,
		nutrition:            nutritionSvc,
		tx:                   tx,
		log:                  log.With("service", "meal"),
		allowOverConsumption: opts.AllowOverConsumption,
		loc:                  nutrition.ParseTimezone(opts.Timezone),
		now:                  time.Now,
	}
}

// owned returns the meal if it belongs to userID. Meals of other users are
// reported as not found.
func (s *Service) owned(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error) {
	m, err := s.meals.GetByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if m.OwnerID != userID {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// checkDish verifies that userID may eat the dish and that weight grams
// respect the over-consumption policy.
func (s *Service) checkDish(ctx context.Context, userID, dishID uuid.UUID, weight float64, field string) error {
	d, err := s.dishes.GetByID(ctx, dishID)
	if err != nil {
		return err
	}
	if !d.IsGlobal() && !d.OwnedBy(userID) {
		return domain.ErrNotFound
	}
	if !domain.IsPositive(weight) {
		return domain.NewValidationError(field, "must be a positive number")
	}
	if !s.allowOverConsumption && weight > d.TotalWeight {
		return domain.NewValidationError(field, "exceeds the total weight of the dish")
	}
	return nil
}
