package usecase

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// CreatePetInput defines the data required to register a new pet.
type CreatePetInput struct {
	Name             string  `json:"name" validate:"required,max=100"`
	Age              int     `json:"age" validate:"required,gt=0"`
	AgeIn            string  `json:"ageIn" validate:"required"`
	Species          string  `json:"species" validate:"required"`
	Breed            string  `json:"breed"`
	Gender           string  `json:"gender"`
	MonitoringDietBy string  `json:"monitoringDietBy" validate:"required"`
	DietGoal         float64 `json:"dietGoal" validate:"required,gt=0"`
}

// UpdatePetInput carries a partial pet update. Nil fields are left untouched.
type UpdatePetInput struct {
	Name             *string  `json:"name"`
	Age              *int     `json:"age"`
	AgeIn            *string  `json:"ageIn"`
	Species          *string  `json:"species"`
	Breed            *string  `json:"breed"`
	Gender           *string  `json:"gender"`
	MonitoringDietBy *string  `json:"monitoringDietBy"`
	DietGoal         *float64 `json:"dietGoal"`
}

// PetOutput returns a pet after a write operation.
type PetOutput struct {
	Pet *entity.Pet
}

// PetUsecase defines the interface for pet management operations.
type PetUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input CreatePetInput) (*PetOutput, error)
	Update(ctx context.Context, userID, petID uuid.UUID, input UpdatePetInput) (*PetOutput, error)
	// Delete removes the pet together with its days, months, years, meals
	// and appointments in one transaction.
	Delete(ctx context.Context, userID, petID uuid.UUID) error
}
