package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/audit"
	calorierepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/calorie"
	limitrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/calorielimit"
	carrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/car"
	makerepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/carmake"
	"github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/composition"
	dishrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/dish"
	foodrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/food"
	mealrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/meal"
	nutrientrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/nutrient"
	orderrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/order"
	supplierrepo "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres/supplier"
	"github.com/heartmarshall/carnutri-backend/internal/config"
	"github.com/heartmarshall/carnutri-backend/internal/saga"
	"github.com/heartmarshall/carnutri-backend/internal/service/calorielimit"
	"github.com/heartmarshall/carnutri-backend/internal/service/dealership"
	"github.com/heartmarshall/carnutri-backend/internal/service/dish"
	"github.com/heartmarshall/carnutri-backend/internal/service/food"
	"github.com/heartmarshall/carnutri-backend/internal/service/meal"
	"github.com/heartmarshall/carnutri-backend/internal/service/nutrition"
)

// Services holds every domain service wired to one connection pool.
type Services struct {
	Food         *food.Service
	Dish         *dish.Service
	Meal         *meal.Service
	CalorieLimit *calorielimit.Service
	Nutrition    *nutrition.Service
	Dealership   *dealership.Service
}

// NewServices builds the repositories and services. reg may be nil, in which
// case saga metrics are not recorded.
func NewServices(log *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, reg prometheus.Registerer) *Services {
	tx := postgres.NewTxManager(pool)

	foods := foodrepo.New(pool)
	dishes := dishrepo.New(pool)
	meals := mealrepo.New(pool)
	limits := limitrepo.New(pool)
	graph := composition.New(pool)

	var sagaMetrics *saga.Metrics
	if reg != nil {
		sagaMetrics = saga.NewMetrics(reg)
	}

	nutritionSvc := nutrition.NewService(log, graph, limits, nutrition.Options{
		ReportTimezone: cfg.Nutrition.ReportTimezone,
		BatchWait:      cfg.Nutrition.BatchWait,
		BatchCapacity:  cfg.Nutrition.BatchCapacity,
	})

	return &Services{
		Food: food.NewService(log, foods, nutrientrepo.New(pool), calorierepo.New(pool), graph, tx),
		Dish: dish.NewService(log, dishes, foods, nutritionSvc, tx, dish.Options{
			AllowOverConsumption: cfg.Nutrition.AllowOverConsumption,
		}),
		Meal: meal.NewService(log, meals, dishes, nutritionSvc, tx, meal.Options{
			AllowOverConsumption: cfg.Nutrition.AllowOverConsumption,
			Timezone:             cfg.Nutrition.ReportTimezone,
		}),
		CalorieLimit: calorielimit.NewService(log, limits),
		Nutrition:    nutritionSvc,
		Dealership: dealership.NewService(
			log,
			makerepo.New(pool),
			carrepo.New(pool),
			supplierrepo.New(pool),
			orderrepo.New(pool),
			auditrepo.New(pool),
			sagaMetrics,
			dealership.Options{
				DefaultCarStatus: cfg.Dealership.CarStatus(),
				MinCarYear:       cfg.Dealership.MinCarYear,
			},
		),
	}
}
