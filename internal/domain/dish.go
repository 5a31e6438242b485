package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a recipe. TotalWeight is the weight in grams of one assembled unit.
type Dish struct {
	ID          uuid.UUID
	OwnerID     *uuid.UUID
	Name        string
	TotalWeight float64
	ImageID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsGlobal returns true if the dish has no owner.
func (d *Dish) IsGlobal() bool { return d.OwnerID == nil }

// OwnedBy returns true if the dish belongs to userID.
func (d *Dish) OwnedBy(userID uuid.UUID) bool {
	return d.OwnerID != nil && *d.OwnerID == userID
}

// DishFood is a composition entry: grams of a food inside one unit of a dish.
type DishFood struct {
	DishID uuid.UUID
	FoodID uuid.UUID
	Weight float64
}

// DishUpdateParams holds optional fields for a partial dish update.
type DishUpdateParams struct {
	Name        *string
	TotalWeight *float64
	ImageID     *uuid.UUID
}

// DishView is a dish with its composition and resolved nutrition.
type DishView struct {
	Dish
	Foods     []DishFood
	Nutrition Nutrition
}
