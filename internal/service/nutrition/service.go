// Package nutrition resolves the derived nutrition values of foods, dishes and
// meals and builds calorie reports from them. Nothing it computes is stored:
// every call re-reads the composition graph.
package nutrition

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

type graphReader interface {
	FoodFactsByIDs(ctx context.Context, foodIDs []uuid.UUID) ([]domain.FoodFacts, error)
	DishGraphsByIDs(ctx context.Context, dishIDs []uuid.UUID) ([]domain.DishGraph, error)
	MealGraphsByIDs(ctx context.Context, mealIDs []uuid.UUID) ([]domain.MealGraph, error)
	MealGraphsBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.MealGraph, error)
}

type limitRepo interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.CalorieLimit, error)
}

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	// ReportTimezone is an IANA name; days in reports start at midnight here.
	ReportTimezone string
	// BatchWait and BatchCapacity configure the enrichment batch loaders.
	BatchWait     time.Duration
	BatchCapacity int
}

// Service resolves nutrition values.
type Service struct {
	graph  graphReader
	limits limitRepo
	log    *slog.Logger
	loc    *time.Location
	batch  batchConfig
}

// NewService creates a new nutrition service.
func NewService(
	log *slog.Logger,
	graph graphReader,
	limits limitRepo,
	opts Options,
) *Service {
	return &Service{
		graph:  graph,
		limits: limits,
		log:    log.With("service", "nutrition"),
		loc:    ParseTimezone(opts.ReportTimezone),
		batch:  newBatchConfig(opts.BatchWait, opts.BatchCapacity),
	}
}

// Location returns the timezone used for report day boundaries.
func (s *Service) Location() *time.Location {
	return s.loc
}
