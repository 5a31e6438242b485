package domain

import (
	"time"

	"github.com/google/uuid"
)

// Atwater factors, kcal per gram.
const (
	KcalPerGramProtein      = 4.0
	KcalPerGramFat          = 9.0
	KcalPerGramCarbohydrate = 4.0
)

// Food is an ingredient. A nil OwnerID marks a global food shared by all users.
type Food struct {
	ID         uuid.UUID
	OwnerID    *uuid.UUID
	Name       string
	IsExternal bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsGlobal returns true if the food has no owner.
func (f *Food) IsGlobal() bool { return f.OwnerID == nil }

// OwnedBy returns true if the food belongs to userID.
func (f *Food) OwnedBy(userID uuid.UUID) bool {
	return f.OwnerID != nil && *f.OwnerID == userID
}

// Macros holds protein, fat and carbohydrate in grams.
type Macros struct {
	Protein      float64
	Fat          float64
	Carbohydrate float64
}

// Calories converts macros to kcal using the Atwater factors.
func (m Macros) Calories() float64 {
	return m.Protein*KcalPerGramProtein + m.Fat*KcalPerGramFat + m.Carbohydrate*KcalPerGramCarbohydrate
}

// Scale multiplies every value by factor.
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Protein:      m.Protein * factor,
		Fat:          m.Fat * factor,
		Carbohydrate: m.Carbohydrate * factor,
	}
}

// Add returns the element-wise sum.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Protein:      m.Protein + o.Protein,
		Fat:          m.Fat + o.Fat,
		Carbohydrate: m.Carbohydrate + o.Carbohydrate,
	}
}

// IsZero returns true if every value is zero.
func (m Macros) IsZero() bool {
	return m.Protein == 0 && m.Fat == 0 && m.Carbohydrate == 0
}

// NutrientRecord stores macros per 100 g of a food.
type NutrientRecord struct {
	FoodID uuid.UUID
	Macros
}

// CalorieRecord stores explicit kcal per 100 g of a food.
type CalorieRecord struct {
	FoodID   uuid.UUID
	Calories float64
}

// FoodFacts is the stored nutrition data of a single food. Either pointer may
// be nil; a nil value means the record does not exist, not zero.
type FoodFacts struct {
	FoodID   uuid.UUID
	Calories *float64
	Macros   *Macros
}

// HasData returns true if at least one nutrition record exists.
func (f FoodFacts) HasData() bool {
	return f.Calories != nil || f.Macros != nil
}

// EffectiveCalories returns kcal per 100 g: the explicit value if present,
// otherwise the Atwater value of the macros.
func (f FoodFacts) EffectiveCalories() (float64, error) {
	switch {
	case f.Calories != nil:
		return *f.Calories, nil
	case f.Macros != nil:
		return f.Macros.Calories(), nil
	default:
		return 0, ErrNoNutritionData
	}
}

// Nutrition is a resolved value set for a dish or a meal.
// MacrosComplete is false when at least one contributing food has no
// NutrientRecord; Macros then covers only the foods that have one.
// CaloriesComplete is false when at least one contributing food has neither
// record; Calories is then a lower bound.
type Nutrition struct {
	Calories         float64
	Macros           Macros
	MacrosComplete   bool
	CaloriesComplete bool
}

// FoodView is a food enriched with its resolved values.
// Macros is nil for foods without a NutrientRecord.
type FoodView struct {
	Food
	Calories float64
	Macros   *Macros
}
