package impl

import (
	"context"
	"log/slog"

	"petmanager/config"
	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// petService implements the PetUsecase interface.
type petService struct {
	txManager      repository.TransactionManager
	petRepo        repository.PetRepository
	maxPetsPerUser int
	logger         *slog.Logger
}

// PetServiceParams holds dependencies for petService, injected by Fx.
type PetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PetRepo   repository.PetRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		txManager:      params.TxManager,
		petRepo:        params.PetRepo,
		maxPetsPerUser: params.Config.Auth.MaxPetsPerUser,
		logger:         params.Logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a pet for the user. The ownership count and the insert
// run in one transaction holding the user's row lock, so two concurrent
// creates cannot both read the same count and slip under the limit.
func (srv *petService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreatePetInput) (*usecase.PetOutput, error) {
	if err := validatePetEnums(input.AgeIn, input.Species, input.MonitoringDietBy); err != nil {
		return nil, err
	}

	pet := &entity.Pet{
		UserID:           userID,
		Name:             input.Name,
		Age:              input.Age,
		AgeIn:            entity.AgeUnit(input.AgeIn),
		Species:          entity.Species(input.Species),
		Breed:            input.Breed,
		Gender:           input.Gender,
		MonitoringDietBy: entity.MonitoringMode(input.MonitoringDietBy),
		DietGoal:         input.DietGoal,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Users().LockByID(ctx, userID); err != nil {
			return err
		}

		pets := repoFactory.Pets()

		count, err := pets.CountByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if count >= int64(srv.maxPetsPerUser) {
			return domainerrors.ErrPetLimitReached
		}

		return pets.Create(ctx, pet)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Pet registered", slog.Any("petID", pet.ID), slog.Any("userID", userID))

	return &usecase.PetOutput{Pet: pet}, nil
}

// Update applies a partial update to a pet the user owns. Changing the
// monitoring mode or goal affects only days created afterwards.
func (srv *petService) Update(ctx context.Context, userID, petID uuid.UUID, input usecase.UpdatePetInput) (*usecase.PetOutput, error) {
	pet, err := srv.ownedPet(ctx, userID, petID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Age != nil {
		pet.Age = *input.Age
	}
	if input.AgeIn != nil {
		pet.AgeIn = entity.AgeUnit(*input.AgeIn)
	}
	if input.Species != nil {
		pet.Species = entity.Species(*input.Species)
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.Gender != nil {
		pet.Gender = *input.Gender
	}
	if input.MonitoringDietBy != nil {
		pet.MonitoringDietBy = entity.MonitoringMode(*input.MonitoringDietBy)
	}
	if input.DietGoal != nil {
		pet.DietGoal = *input.DietGoal
	}

	if err := validatePetEnums(pet.AgeIn.String(), pet.Species.String(), pet.MonitoringDietBy.String()); err != nil {
		return nil, err
	}
	if pet.Age <= 0 || pet.DietGoal <= 0 {
		return nil, domainerrors.NewValidation(map[string]string{
			"age": "Age and diet goal must be positive.",
		})
	}

	if err := srv.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	return &usecase.PetOutput{Pet: pet}, nil
}

// Delete removes a pet and everything recorded for it: days, months, years,
// meals with their foods, and appointments, all in one transaction.
func (srv *petService) Delete(ctx context.Context, userID, petID uuid.UUID) error {
	if _, err := srv.ownedPet(ctx, userID, petID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Meals().DeleteByPetID(ctx, petID); err != nil {
			return err
		}
		if err := repoFactory.Days().DeleteByPetID(ctx, petID); err != nil {
			return err
		}
		if err := repoFactory.Months().DeleteByPetID(ctx, petID); err != nil {
			return err
		}
		if err := repoFactory.Years().DeleteByPetID(ctx, petID); err != nil {
			return err
		}
		if err := repoFactory.Appointments().DeleteByPetID(ctx, petID); err != nil {
			return err
		}

		return repoFactory.Pets().Delete(ctx, petID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Pet removed", slog.Any("petID", petID), slog.Any("userID", userID))

	return nil
}

// ownedPet loads a pet and verifies the requesting user owns it. Foreign
// pets surface as not found, never as forbidden, to avoid existence leaks.
func (srv *petService) ownedPet(ctx context.Context, userID, petID uuid.UUID) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.UserID != userID {
		return nil, domainerrors.ErrPetNotFound
	}

	return pet, nil
}

func validatePetEnums(ageIn, species, monitoringDietBy string) error {
	fields := map[string]string{}

	if !entity.AgeUnit(ageIn).IsValid() {
		fields["ageIn"] = "AgeIn must be either 'months' or 'years'."
	}
	if !entity.Species(species).IsValid() {
		fields["species"] = "Species must be either 'dog' or 'cat'."
	}
	if !entity.MonitoringMode(monitoringDietBy).IsValid() {
		fields["monitoringDietBy"] = "MonitoringDietBy must be either 'meals' or 'calories'."
	}

	if len(fields) > 0 {
		return domainerrors.NewValidation(fields)
	}

	return nil
}
