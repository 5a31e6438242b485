package meal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const (
	maxNameLen       = 200
	maxDishesPerMeal = 50
)

// DishEntryInput is a dish and the grams of it eaten.
type DishEntryInput struct {
	DishID uuid.UUID
	Weight float64
}

// CreateMealInput holds the parameters for creating a meal. Name is required
// for the custom type and ignored otherwise.
type CreateMealInput struct {
	MealTypeID int
	Name       *string
	Dishes     []DishEntryInput
}

// Validate checks all fields and collects all errors.
func (i CreateMealInput) Validate() error {
	var errs []domain.FieldError

	if i.MealTypeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "meal_type_id", Message: "required"})
	}
	if i.MealTypeID == domain.MealTypeCustom {
		if i.Name == nil || domain.CleanName(*i.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required for custom meals"})
		}
	}
	if i.Name != nil && len(domain.CleanName(*i.Name)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}

	if len(i.Dishes) > maxDishesPerMeal {
		errs = append(errs, domain.FieldError{Field: "dishes", Message: fmt.Sprintf("max %d dishes", maxDishesPerMeal)})
	}
	seen := make(map[uuid.UUID]bool, len(i.Dishes))
	for n, d := range i.Dishes {
		field := fmt.Sprintf("dishes[%d]", n)
		if d.DishID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".dish_id", Message: "required"})
			continue
		}
		if seen[d.DishID] {
			errs = append(errs, domain.FieldError{Field: field + ".dish_id", Message: "duplicate dish"})
		}
		seen[d.DishID] = true
		if !domain.IsPositive(d.Weight) {
			errs = append(errs, domain.FieldError{Field: field + ".weight", Message: "must be a positive number"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DishWeightInput identifies a dish inside a meal and its grams.
type DishWeightInput struct {
	MealID uuid.UUID
	DishID uuid.UUID
	Weight float64
}

// Validate checks all fields and collects all errors.
func (i DishWeightInput) Validate() error {
	var errs []domain.FieldError
	if i.MealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meal_id", Message: "required"})
	}
	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if !domain.IsPositive(i.Weight) {
		errs = append(errs, domain.FieldError{Field: "weight", Message: "must be a positive number"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListMealsInput bounds a meal listing to [From, To).
type ListMealsInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i ListMealsInput) Validate() error {
	var errs []domain.FieldError
	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && !i.To.After(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
