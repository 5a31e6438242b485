package food

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const maxNameLen = 200

// MacrosInput holds grams per 100 g of food.
type MacrosInput struct {
	Protein      float64
	Fat          float64
	Carbohydrate float64
}

func (m MacrosInput) validate() []domain.FieldError {
	var errs []domain.FieldError
	if !domain.IsFinite(m.Protein) || m.Protein < 0 {
		errs = append(errs, domain.FieldError{Field: "protein", Message: "must be a non-negative number"})
	}
	if !domain.IsFinite(m.Fat) || m.Fat < 0 {
		errs = append(errs, domain.FieldError{Field: "fat", Message: "must be a non-negative number"})
	}
	if !domain.IsFinite(m.Carbohydrate) || m.Carbohydrate < 0 {
		errs = append(errs, domain.FieldError{Field: "carbohydrate", Message: "must be a non-negative number"})
	}
	if len(errs) == 0 && m.Protein == 0 && m.Fat == 0 && m.Carbohydrate == 0 {
		errs = append(errs, domain.FieldError{Field: "macros", Message: "at least one value must be positive"})
	}
	for _, v := range []float64{m.Protein, m.Fat, m.Carbohydrate} {
		if v > 100 {
			errs = append(errs, domain.FieldError{Field: "macros", Message: "values are per 100 g and must not exceed 100"})
			break
		}
	}
	return errs
}

func (m MacrosInput) toDomain() domain.Macros {
	return domain.Macros{Protein: m.Protein, Fat: m.Fat, Carbohydrate: m.Carbohydrate}
}

func validateName(field, name string) []domain.FieldError {
	name = domain.CleanName(name)
	if name == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(name) > maxNameLen {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", maxNameLen)}}
	}
	return nil
}

func validateCalories(kcal float64) []domain.FieldError {
	if !domain.IsPositive(kcal) {
		return []domain.FieldError{{Field: "calories", Message: "must be a positive number"}}
	}
	return nil
}

// CreateFoodInput holds the parameters for creating a food. At least one of
// Calories and Macros is required.
type CreateFoodInput struct {
	Name       string
	IsExternal bool
	Calories   *float64
	Macros     *MacrosInput
}

// Validate checks all fields and collects all errors.
func (i CreateFoodInput) Validate() error {
	errs := validateName("name", i.Name)

	if i.Calories == nil && i.Macros == nil {
		errs = append(errs, domain.FieldError{Field: "nutrition", Message: "calories or macros required"})
	}
	if i.Calories != nil {
		errs = append(errs, validateCalories(*i.Calories)...)
	}
	if i.Macros != nil {
		errs = append(errs, i.Macros.validate()...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFoodInput holds the parameters for updating a food.
type UpdateFoodInput struct {
	FoodID     uuid.UUID
	Name       *string
	IsExternal *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateFoodInput) Validate() error {
	var errs []domain.FieldError
	if i.FoodID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "food_id", Message: "required"})
	}
	if i.Name == nil && i.IsExternal == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName("name", *i.Name)...)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetNutrientsInput holds the parameters for replacing the macros of a food.
type SetNutrientsInput struct {
	FoodID uuid.UUID
	Macros MacrosInput
}

// Validate checks all fields and collects all errors.
func (i SetNutrientsInput) Validate() error {
	var errs []domain.FieldError
	if i.FoodID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "food_id", Message: "required"})
	}
	errs = append(errs, i.Macros.validate()...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetCaloriesInput holds the parameters for replacing the calories of a food.
type SetCaloriesInput struct {
	FoodID   uuid.UUID
	Calories float64
}

// Validate checks all fields and collects all errors.
func (i SetCaloriesInput) Validate() error {
	var errs []domain.FieldError
	if i.FoodID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "food_id", Message: "required"})
	}
	errs = append(errs, validateCalories(i.Calories)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func trimName(s string) string {
	return domain.CleanName(s)
}
