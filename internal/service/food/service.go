// Package food manages foods and their nutrient and calorie records.
package food

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

type foodRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Food, error)
	Create(ctx context.Context, food domain.Food) (*domain.Food, error)
	Update(ctx context.Context, id uuid.UUID, name *string, isExternal *bool) (*domain.Food, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type nutrientRepo interface {
	Upsert(ctx context.Context, rec domain.NutrientRecord) (*domain.NutrientRecord, error)
	Delete(ctx context.Context, foodID uuid.UUID) error
}

type calorieRepo interface {
	Upsert(ctx context.Context, rec domain.CalorieRecord) (*domain.CalorieRecord, error)
	Delete(ctx context.Context, foodID uuid.UUID) error
}

type factsReader interface {
	FoodFactsByIDs(ctx context.Context, foodIDs []uuid.UUID) ([]domain.FoodFacts, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides food management operations.
type Service struct {
	foods     foodRepo
	nutrients nutrientRepo
	calories  calorieRepo
	facts     factsReader
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Food service.
func NewService(
	log *slog.Logger,
	foods foodRepo,
	nutrients nutrientRepo,
	calories calorieRepo,
	facts factsReader,
	tx txManager,
) *Service {
	return &Service{
		foods:     foods,
		nutrients: nutrients,
		calories:  calories,
		facts:     facts,
		tx:        tx,
		log:       log.With("service", "food"),
	}
}

// visible returns the food if userID may read it: own foods and global ones.
// Foods of other users are reported as not found.
func (s *Service) visible(ctx context.Context, userID, foodID uuid.UUID) (*domain.Food, error) {
	f, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !f.IsGlobal() && !f.OwnedBy(userID) {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// owned returns the food if userID may change it. Global foods are read-only.
func (s *Service) owned(ctx context.Context, userID, foodID uuid.UUID) (*domain.Food, error) {
	f, err := s.visible(ctx, userID, foodID)
	if err != nil {
		return nil, err
	}
	if f.IsGlobal() {
		return nil, domain.ErrForbidden
	}
	return f, nil
}

// factsOf returns the stored facts of one food.
func (s *Service) factsOf(ctx context.Context, foodID uuid.UUID) (domain.FoodFacts, error) {
	facts, err := s.facts.FoodFactsByIDs(ctx, []uuid.UUID{foodID})
	if err != nil {
		return domain.FoodFacts{}, err
	}
	if len(facts) == 0 {
		return domain.FoodFacts{}, domain.ErrNotFound
	}
	return facts[0], nil
}

// view combines a food with its resolved values. A food without any record
// is shown with zero calories.
func view(f domain.Food, facts domain.FoodFacts) domain.FoodView {
	kcal, _ := facts.EffectiveCalories()
	return domain.FoodView{Food: f, Calories: kcal, Macros: facts.Macros}
}
