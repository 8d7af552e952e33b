package repository

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// PetRepository persists pets. FindByID returns domain ErrPetNotFound when
// no pet matches.
type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
