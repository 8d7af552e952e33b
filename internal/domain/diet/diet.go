// Package diet implements the diet goal accounting shared by meal
// operations. All functions are pure; persistence applies the returned
// deltas atomically.
package diet

import "petmanager/internal/domain/entity"

// Operation distinguishes create from update when validating a payload,
// since the required shape differs between the two.
type Operation int

const (
	OperationCreate Operation = iota
	OperationUpdate
)

// MealCalories sums the calorie contributions of the given foods.
func MealCalories(foods []entity.MealFood) float64 {
	var total float64
	for _, f := range foods {
		total += f.Calories()
	}
	return total
}

// CreateDelta returns the progress change caused by creating meal under the
// given monitoring mode: one unit by-meals, the calorie total by-calories.
func CreateDelta(mode entity.MonitoringMode, meal entity.Meal) float64 {
	if mode == entity.MonitorByMeals {
		return 1
	}
	return meal.CaloriesTotal
}

// UpdateDelta returns the progress change caused by replacing old's foods
// with newFoods. Progress moves only for by-calories days and only when the
// update actually supplies a non-empty foods list; the second return value
// reports whether any change applies.
func UpdateDelta(mode entity.MonitoringMode, old entity.Meal, newFoods []entity.MealFood) (float64, bool) {
	if mode != entity.MonitorByCalories || len(newFoods) == 0 {
		return 0, false
	}
	return MealCalories(newFoods) - old.CaloriesTotal, true
}

// DeleteDelta returns the progress change caused by deleting meal, the exact
// inverse of the contribution it holds at deletion time.
func DeleteDelta(mode entity.MonitoringMode, meal entity.Meal) float64 {
	if mode == entity.MonitorByMeals {
		return -1
	}
	return -meal.CaloriesTotal
}
