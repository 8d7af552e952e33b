package usecase

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// MealFoodInput is one food line of a calorie-tracked meal payload.
type MealFoodInput struct {
	FoodID   uuid.UUID `json:"foodId" validate:"required"`
	Quantity float64   `json:"quantity" validate:"required,gt=0"`
}

// CreateMealInput defines the data required to record a meal. Description is
// used on by-meals days, Foods on by-calories days; the day's monitoring
// mode decides which shape is accepted.
type CreateMealInput struct {
	DayID       uuid.UUID       `json:"dayId" validate:"required"`
	Description string          `json:"description"`
	Foods       []MealFoodInput `json:"foods"`
}

// UpdateMealInput carries a partial meal update. A nil Foods pointer means
// the field was absent from the payload, which leaves the foods and the
// day's progress untouched.
type UpdateMealInput struct {
	Description *string          `json:"description"`
	Foods       *[]MealFoodInput `json:"foods"`
}

// MealOutput returns a meal after a write operation.
type MealOutput struct {
	Meal *entity.Meal
}

// MealUsecase defines the interface for meal recording operations. Every
// write keeps the parent day's diet goal progress consistent in the same
// transaction.
type MealUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateMealInput) (*MealOutput, error)
	Update(ctx context.Context, userID, mealID uuid.UUID, input UpdateMealInput) (*MealOutput, error)
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
}
