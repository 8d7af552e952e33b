// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealFood is one line of a calorie-tracked meal: a quantity of a catalog
// food. BaseCalories is the food's calories per 100 units of Quantity,
// copied from the catalog at meal-creation time.
type MealFood struct {
	FoodID       uuid.UUID
	Quantity     float64
	BaseCalories float64
}

// Calories returns the calorie contribution of this line.
func (f MealFood) Calories() float64 {
	return f.Quantity / 100 * f.BaseCalories
}

// Meal belongs to a Day (and transitively a pet and user). Exactly one of
// the two shapes is populated, fixed by the parent Day's monitoring mode at
// creation: a free-text description (by-meals) or a foods list plus the
// computed calorie total (by-calories).
type Meal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PetID         uuid.UUID
	DayID         uuid.UUID
	Description   string
	Foods         []MealFood
	CaloriesTotal float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
