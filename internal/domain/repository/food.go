package repository

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// FoodRepository persists catalog foods.
type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
}

// TokenBlacklistRepository records logged-out JWTs. Contains must be checked
// before any token is trusted.
type TokenBlacklistRepository interface {
	Add(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
}
