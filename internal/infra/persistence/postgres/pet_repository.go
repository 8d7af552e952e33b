package postgres

import (
	"context"

	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petRepository implements the domain.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// Create persists a new pet.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		return errors.Wrap(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// Update saves all fields of an existing pet.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Save(petM).Error; err != nil {
		return errors.Wrap(err, "failed to update pet")
	}

	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// Delete removes a pet row. Dependent rows are removed by the usecase inside
// the same transaction.
func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.PetModel{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete pet")
	}

	return nil
}

// FindByID retrieves a single pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}
		return nil, errors.Wrap(err, "failed to find pet")
	}

	return toPetDomain(&petM), nil
}

// CountByUserID counts the pets owned by a user, for the ownership limit.
func (repo *petRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PetModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pets")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:               data.ID,
		UserID:           data.UserID,
		Name:             data.Name,
		Age:              data.Age,
		AgeIn:            entity.AgeUnit(data.AgeIn),
		Species:          entity.Species(data.Species),
		Breed:            data.Breed,
		Gender:           data.Gender,
		MonitoringDietBy: entity.MonitoringMode(data.MonitoringDietBy),
		DietGoal:         data.DietGoal,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel for persistence.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Name:             data.Name,
		Age:              data.Age,
		AgeIn:            data.AgeIn.String(),
		Species:          data.Species.String(),
		Breed:            data.Breed,
		Gender:           data.Gender,
		MonitoringDietBy: data.MonitoringDietBy.String(),
		DietGoal:         data.DietGoal,
	}
}
