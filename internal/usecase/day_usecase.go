package usecase

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// CreateDayInput defines the data required to open a tracked day for a pet.
type CreateDayInput struct {
	PetID uuid.UUID `json:"petId" validate:"required"`
	Day   int       `json:"day" validate:"required,gt=0"`
	Month int       `json:"month" validate:"required,gt=0"`
	Year  int       `json:"year" validate:"required,gt=0"`
}

// DayOutput returns a day after a write operation.
type DayOutput struct {
	Day *entity.Day
}

// DayUsecase defines the interface for diet day tracking operations.
type DayUsecase interface {
	// Create opens a day for the pet, snapshotting the pet's monitoring mode
	// and diet goal, and lazily creates the month and year markers of its
	// period in the same transaction.
	Create(ctx context.Context, userID uuid.UUID, input CreateDayInput) (*DayOutput, error)
}
