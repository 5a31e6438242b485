package domain

import (
	"time"

	"github.com/google/uuid"
)

// FoodPortion is a food inside one unit of a dish together with its stored
// nutrition facts. Weight is in grams.
type FoodPortion struct {
	Facts  FoodFacts
	Weight float64
}

// DishGraph is a dish with the facts of every food it contains.
type DishGraph struct {
	DishID      uuid.UUID
	TotalWeight float64
	Foods       []FoodPortion
}

// DishPortion is the weight in grams of a dish consumed in a meal.
type DishPortion struct {
	Dish   DishGraph
	Weight float64
}

// MealGraph is a meal joined down to the nutrition facts of every food.
type MealGraph struct {
	MealID    uuid.UUID
	OwnerID   uuid.UUID
	CreatedAt time.Time
	Dishes    []DishPortion
}
