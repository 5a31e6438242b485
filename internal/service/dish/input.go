package dish

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const (
	maxNameLen      = 200
	maxFoodsPerDish = 100
)

// FoodEntryInput is a food and its grams in one unit of the dish.
type FoodEntryInput struct {
	FoodID uuid.UUID
	Weight float64
}

func validateName(name string) []domain.FieldError {
	name = domain.CleanName(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)}}
	}
	return nil
}

func validateWeight(field string, w float64) []domain.FieldError {
	if !domain.IsPositive(w) {
		return []domain.FieldError{{Field: field, Message: "must be a positive number"}}
	}
	return nil
}

// CreateDishInput holds the parameters for creating a dish.
type CreateDishInput struct {
	Name        string
	TotalWeight float64
	ImageID     *uuid.UUID
	Foods       []FoodEntryInput
}

// Validate checks all fields and collects all errors.
func (i CreateDishInput) Validate() error {
	errs := validateName(i.Name)
	errs = append(errs, validateWeight("total_weight", i.TotalWeight)...)

	if len(i.Foods) > maxFoodsPerDish {
		errs = append(errs, domain.FieldError{Field: "foods", Message: fmt.Sprintf("max %d foods", maxFoodsPerDish)})
	}
	seen := make(map[uuid.UUID]bool, len(i.Foods))
	for n, f := range i.Foods {
		field := fmt.Sprintf("foods[%d]", n)
		if f.FoodID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".food_id", Message: "required"})
			continue
		}
		if seen[f.FoodID] {
			errs = append(errs, domain.FieldError{Field: field + ".food_id", Message: "duplicate food"})
		}
		seen[f.FoodID] = true
		errs = append(errs, validateWeight(field+".weight", f.Weight)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDishInput holds the parameters for updating a dish.
type UpdateDishInput struct {
	DishID      uuid.UUID
	Name        *string
	TotalWeight *float64
	ImageID     *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateDishInput) Validate() error {
	var errs []domain.FieldError
	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if i.Name == nil && i.TotalWeight == nil && i.ImageID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.TotalWeight != nil {
		errs = append(errs, validateWeight("total_weight", *i.TotalWeight)...)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FoodWeightInput identifies a food inside a dish and its new weight.
type FoodWeightInput struct {
	DishID uuid.UUID
	FoodID uuid.UUID
	Weight float64
}

// Validate checks all fields and collects all errors.
func (i FoodWeightInput) Validate() error {
	var errs []domain.FieldError
	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if i.FoodID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "food_id", Message: "required"})
	}
	errs = append(errs, validateWeight("weight", i.Weight)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
