package nutrition

import (
	"math"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// All stored values are per 100 g of food.
const per100g = 100.0

// FoodCalories returns the effective kcal per 100 g of a food.
func FoodCalories(facts domain.FoodFacts) (float64, error) {
	kcal, err := facts.EffectiveCalories()
	if err != nil {
		return 0, err
	}
	return nonNegative(kcal), nil
}

// DishNutrition sums the contribution of every food of one unit of the dish:
// value * weight / 100, with the calorie fallback applied per food.
func DishNutrition(g domain.DishGraph) domain.Nutrition {
	acc := newAccumulator()
	for _, fp := range g.Foods {
		acc.add(fp.Facts, fp.Weight/per100g)
	}
	return acc.result()
}

// MealNutrition walks the full meal graph once. Each food contributes
// value * foodWeight / 100 * dishWeightUsed / dishTotalWeight.
func MealNutrition(g domain.MealGraph) domain.Nutrition {
	acc := newAccumulator()
	for _, dp := range g.Dishes {
		if !domain.IsPositive(dp.Dish.TotalWeight) {
			acc.skip()
			continue
		}
		share := dp.Weight / dp.Dish.TotalWeight
		for _, fp := range dp.Dish.Foods {
			acc.add(fp.Facts, fp.Weight/per100g*share)
		}
	}
	return acc.result()
}

// accumulator sums scaled per-food values and remembers whether any food
// was left out of each total.
type accumulator struct {
	calories         float64
	macros           domain.Macros
	caloriesComplete bool
	macrosComplete   bool
}

func newAccumulator() *accumulator {
	return &accumulator{caloriesComplete: true, macrosComplete: true}
}

func (a *accumulator) add(facts domain.FoodFacts, factor float64) {
	if !domain.IsFinite(factor) || factor < 0 {
		a.skip()
		return
	}

	// A food without records adds nothing to calories and marks them partial.
	kcal, err := facts.EffectiveCalories()
	if err == nil && domain.IsFinite(kcal) {
		a.calories += kcal * factor
	} else {
		a.caloriesComplete = false
	}

	if facts.Macros == nil {
		a.macrosComplete = false
		return
	}
	a.macros = a.macros.Add(facts.Macros.Scale(factor))
}

// skip records a contribution that could not be computed.
func (a *accumulator) skip() {
	a.caloriesComplete = false
	a.macrosComplete = false
}

func (a *accumulator) result() domain.Nutrition {
	return domain.Nutrition{
		Calories: nonNegative(a.calories),
		Macros: domain.Macros{
			Protein:      nonNegative(a.macros.Protein),
			Fat:          nonNegative(a.macros.Fat),
			Carbohydrate: nonNegative(a.macros.Carbohydrate),
		},
		MacrosComplete:   a.macrosComplete,
		CaloriesComplete: a.caloriesComplete,
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
