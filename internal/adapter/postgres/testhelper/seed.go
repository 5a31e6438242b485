package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewOwnerID returns a fresh owner id. Owners are not a table of their own.
func NewOwnerID() uuid.UUID {
	return uuid.New()
}

// FoodSeed describes the nutrition records to attach to a seeded food.
// Nil pointers mean the record is not created.
type FoodSeed struct {
	OwnerID  *uuid.UUID
	Name     string
	Calories *float64
	Macros   *domain.Macros
}

// SeedFood inserts a food and the requested nutrition records.
func SeedFood(t *testing.T, pool *pgxpool.Pool, seed FoodSeed) domain.Food {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	name := seed.Name
	if name == "" {
		name = "Food " + uniqueSuffix()
	}
	food := domain.Food{
		ID:        uuid.New(),
		OwnerID:   seed.OwnerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO foods (id, owner_id, name, is_external, created_at, updated_at)
		 VALUES ($1, $2, $3, false, $4, $5)`,
		food.ID, food.OwnerID, food.Name, food.CreatedAt, food.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFood insert food: %v", err)
	}

	if seed.Macros != nil {
		_, err = pool.Exec(ctx,
			`INSERT INTO nutrients (food_id, protein, fat, carbohydrate) VALUES ($1, $2, $3, $4)`,
			food.ID, seed.Macros.Protein, seed.Macros.Fat, seed.Macros.Carbohydrate,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedFood insert nutrients: %v", err)
		}
	}

	if seed.Calories != nil {
		_, err = pool.Exec(ctx,
			`INSERT INTO calories (food_id, calories) VALUES ($1, $2)`,
			food.ID, *seed.Calories,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedFood insert calories: %v", err)
		}
	}

	return food
}

// SeedDish inserts a dish with the given composition (food id -> grams).
func SeedDish(t *testing.T, pool *pgxpool.Pool, ownerID *uuid.UUID, totalWeight float64, foods map[uuid.UUID]float64) domain.Dish {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	dish := domain.Dish{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Dish " + uniqueSuffix(),
		TotalWeight: totalWeight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO dishes (id, owner_id, name, total_weight, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		dish.ID, dish.OwnerID, dish.Name, dish.TotalWeight, dish.CreatedAt, dish.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDish insert dish: %v", err)
	}

	for foodID, weight := range foods {
		_, err = pool.Exec(ctx,
			`INSERT INTO dish_foods (dish_id, food_id, weight) VALUES ($1, $2, $3)`,
			dish.ID, foodID, weight,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedDish insert dish_food: %v", err)
		}
	}

	return dish
}

// SeedMeal inserts a custom meal created at createdAt with the given
// composition (dish id -> grams).
func SeedMeal(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, createdAt time.Time, dishes map[uuid.UUID]float64) domain.Meal {
	t.Helper()
	ctx := context.Background()

	meal := domain.Meal{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		MealTypeID: domain.MealTypeCustom,
		Name:       "Meal " + uniqueSuffix(),
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
		UpdatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meals (id, owner_id, meal_type_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		meal.ID, meal.OwnerID, meal.MealTypeID, meal.Name, meal.CreatedAt, meal.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeal insert meal: %v", err)
	}

	for dishID, weight := range dishes {
		_, err = pool.Exec(ctx,
			`INSERT INTO meal_dishes (meal_id, dish_id, weight) VALUES ($1, $2, $3)`,
			meal.ID, dishID, weight,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedMeal insert meal_dish: %v", err)
		}
	}

	return meal
}

// SeedMake inserts a make with a unique name derived from prefix.
func SeedMake(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Make {
	t.Helper()

	m := domain.Make{
		ID:        uuid.New(),
		Name:      prefix + " " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO makes (id, name, created_at) VALUES ($1, $2, $3)`,
		m.ID, m.Name, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMake: %v", err)
	}
	return m
}

// SeedSupplier inserts a supplier with a unique company name derived from prefix.
func SeedSupplier(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Supplier {
	t.Helper()

	s := domain.Supplier{
		ID:          uuid.New(),
		CompanyName: prefix + " " + uniqueSuffix(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO suppliers (id, company_name, created_at) VALUES ($1, $2, $3)`,
		s.ID, s.CompanyName, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSupplier: %v", err)
	}
	return s
}

// SeedCar inserts a car under makeID with a unique VIN.
func SeedCar(t *testing.T, pool *pgxpool.Pool, makeID uuid.UUID, status domain.CarStatus) domain.Car {
	t.Helper()

	c := domain.Car{
		ID:        uuid.New(),
		MakeID:    makeID,
		Model:     "Model " + uniqueSuffix(),
		Year:      2020,
		Price:     decimal.NewFromInt(15000),
		VIN:       "VIN" + strings.ToUpper(uniqueSuffix()),
		Status:    status,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cars (id, make_id, model, year, price, vin, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.MakeID, c.Model, c.Year, c.Price.String(), c.VIN, string(c.Status), c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCar: %v", err)
	}
	return c
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
