package repository

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// MealRepository persists meals together with their foods lines.
type MealRepository interface {
	Create(ctx context.Context, meal *entity.Meal) error
	Update(ctx context.Context, meal *entity.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}
