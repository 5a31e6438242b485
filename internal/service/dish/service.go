// Package dish manages dishes and the foods they are made of. Dish nutrition
// is resolved on every read and never stored.
package dish

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

type dishRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Dish, error)
	ListFoods(ctx context.Context, dishID uuid.UUID) ([]domain.DishFood, error)
	ListFoodsByDishIDs(ctx context.Context, dishIDs []uuid.UUID) ([]domain.DishFood, error)
	MaxMealWeight(ctx context.Context, dishID uuid.UUID) (float64, error)
	Create(ctx context.Context, dish domain.Dish) (*domain.Dish, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DishUpdateParams) (*domain.Dish, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddFood(ctx context.Context, entry domain.DishFood) error
	UpdateFoodWeight(ctx context.Context, dishID, foodID uuid.UUID, weight float64) error
	RemoveFood(ctx context.Context, dishID, foodID uuid.UUID) error
}

type foodRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error)
}

type resolver interface {
	ResolveDishNutrition(ctx context.Context, dishID uuid.UUID) (domain.Nutrition, error)
	DishNutritionMany(ctx context.Context, dishIDs []uuid.UUID) ([]domain.Nutrition, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the service.
type Options struct {
	// AllowOverConsumption lets the total weight drop below a portion that a
	// meal already records. Rejected by default.
	AllowOverConsumption bool
}

// Service provides dish management operations.
type Service struct {
	dishes    dishRepo
	foods     foodRepo
	nutrition resolver
	tx        txManager
	log       *slog.Logger

	allowOverConsumption bool
}

// NewService creates a new Dish service.
func NewService(
	log *slog.Logger,
	dishes dishRepo,
	foods foodRepo,
	nutritionSvc resolver,
	tx txManager,
	opts Options,
) *Service {
	return &Service{
		dishes:               dishes,
		foods:                foods,
		nutrition:            nutritionSvc,
		tx:                   tx,
		log:                  log.With("service", "dish"),
		allowOverConsumption: opts.AllowOverConsumption,
	}
}

// visible returns the dish if userID may read it. Dishes of other users are
// reported as not found.
func (s *Service) visible(ctx context.Context, userID, dishID uuid.UUID) (*domain.Dish, error) {
	d, err := s.dishes.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if !d.IsGlobal() && !d.OwnedBy(userID) {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// owned returns the dish if userID may change it. Global dishes are read-only.
func (s *Service) owned(ctx context.Context, userID, dishID uuid.UUID) (*domain.Dish, error) {
	d, err := s.visible(ctx, userID, dishID)
	if err != nil {
		return nil, err
	}
	if d.IsGlobal() {
		return nil, domain.ErrForbidden
	}
	return d, nil
}

// checkFoodVisible verifies that userID may use the food as an ingredient.
func (s *Service) checkFoodVisible(ctx context.Context, userID, foodID uuid.UUID) error {
	f, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return err
	}
	if !f.IsGlobal() && !f.OwnedBy(userID) {
		return domain.ErrNotFound
	}
	return nil
}
