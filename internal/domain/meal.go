package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealTypeCustom is the only meal type that takes a user-supplied name and may
// repeat within a day.
const MealTypeCustom = 5

// MealType is a seeded meal category (breakfast, lunch, ...).
type MealType struct {
	ID   int
	Name string
}

// IsCustom returns true for the custom meal type.
func (t MealType) IsCustom() bool { return t.ID == MealTypeCustom }

// Meal is an eating occasion owned by a user.
type Meal struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	MealTypeID int
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MealDish is a composition entry: grams of a dish consumed in a meal.
type MealDish struct {
	MealID uuid.UUID
	DishID uuid.UUID
	Weight float64
}

// MealView is a meal with its composition and resolved nutrition.
type MealView struct {
	Meal
	Dishes    []MealDish
	Nutrition Nutrition
}

// CalorieLimit is a per-user daily calorie ceiling.
type CalorieLimit struct {
	OwnerID   uuid.UUID
	Limit     float64
	CreatedAt time.Time
}
