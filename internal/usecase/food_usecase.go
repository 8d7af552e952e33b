package usecase

import (
	"context"

	"petmanager/internal/domain/entity"
)

// CreateFoodInput defines the data required to add a food to the catalog.
// BaseCalories is calories per 100 units.
type CreateFoodInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	BaseCalories float64 `json:"baseCalories" validate:"required,gt=0"`
}

// FoodOutput returns a catalog food after a write operation.
type FoodOutput struct {
	Food *entity.Food
}

// FoodUsecase defines the interface for the food catalog.
type FoodUsecase interface {
	Create(ctx context.Context, input CreateFoodInput) (*FoodOutput, error)
}
