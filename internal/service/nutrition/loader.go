package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const (
	defaultBatchCapacity = 100
	defaultBatchWait     = 2 * time.Millisecond
)

type batchConfig struct {
	wait     time.Duration
	capacity int
}

func newBatchConfig(wait time.Duration, capacity int) batchConfig {
	if wait <= 0 {
		wait = defaultBatchWait
	}
	if capacity <= 0 {
		capacity = defaultBatchCapacity
	}
	return batchConfig{wait: wait, capacity: capacity}
}

// Loaders batches the nutrition lookups of one request into single graph
// queries. Loaders cache results, so a set must not outlive the request.
type Loaders struct {
	DishNutrition *dataloader.Loader[uuid.UUID, domain.Nutrition]
	MealNutrition *dataloader.Loader[uuid.UUID, domain.Nutrition]
}

// NewLoaders creates a fresh set of loaders backed by the service's graph reader.
func (s *Service) NewLoaders() *Loaders {
	return &Loaders{
		DishNutrition: newLoader(s.batch, newDishBatchFn(s.graph)),
		MealNutrition: newLoader(s.batch, newMealBatchFn(s.graph)),
	}
}

func newLoader[V any](cfg batchConfig, batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](cfg.wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](cfg.capacity),
	)
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

func newDishBatchFn(repo graphReader) dataloader.BatchFunc[uuid.UUID, domain.Nutrition] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Nutrition] {
		graphs, err := repo.DishGraphsByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Nutrition](len(keys), fmt.Errorf("get dish graphs: %w", err))
		}

		resolved := make(map[uuid.UUID]domain.Nutrition, len(graphs))
		for _, g := range graphs {
			resolved[g.DishID] = DishNutrition(g)
		}
		return mapResults(keys, resolved, "dish")
	}
}

func newMealBatchFn(repo graphReader) dataloader.BatchFunc[uuid.UUID, domain.Nutrition] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Nutrition] {
		graphs, err := repo.MealGraphsByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Nutrition](len(keys), fmt.Errorf("get meal graphs: %w", err))
		}

		resolved := make(map[uuid.UUID]domain.Nutrition, len(graphs))
		for _, g := range graphs {
			resolved[g.MealID] = MealNutrition(g)
		}
		return mapResults(keys, resolved, "meal")
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps resolved values back to key order. Missing keys are not found.
func mapResults[V any](keys []uuid.UUID, resolved map[uuid.UUID]V, entity string) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := resolved[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Error: fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)}
		}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "nutrition_loaders"

// WithLoaders stores a request's loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// loaders returns the request's loaders, or a fresh set when none is attached.
func (s *Service) loaders(ctx context.Context) *Loaders {
	if l, ok := ctx.Value(loadersKey).(*Loaders); ok && l != nil {
		return l
	}
	return s.NewLoaders()
}

// ---------------------------------------------------------------------------
// Enrichment
// ---------------------------------------------------------------------------

// DishNutritionMany resolves several dishes. Lookups run concurrently and are
// collapsed by the loader into batched graph queries. The result is in the
// order of dishIDs.
func (s *Service) DishNutritionMany(ctx context.Context, dishIDs []uuid.UUID) ([]domain.Nutrition, error) {
	return loadAll(ctx, s.loaders(ctx).DishNutrition, dishIDs)
}

// MealNutritionMany is DishNutritionMany for meals.
func (s *Service) MealNutritionMany(ctx context.Context, mealIDs []uuid.UUID) ([]domain.Nutrition, error) {
	return loadAll(ctx, s.loaders(ctx).MealNutrition, mealIDs)
}

func loadAll(ctx context.Context, loader *dataloader.Loader[uuid.UUID, domain.Nutrition], ids []uuid.UUID) ([]domain.Nutrition, error) {
	out := make([]domain.Nutrition, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			n, err := loader.Load(gctx, id)()
			if err != nil {
				return err
			}
			out[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
