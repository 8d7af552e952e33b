package impl

import (
	"context"
	"log/slog"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dayService implements the DayUsecase interface.
type dayService struct {
	txManager repository.TransactionManager
	petRepo   repository.PetRepository
	dayRepo   repository.DayRepository
	logger    *slog.Logger
}

// DayServiceParams holds dependencies for dayService, injected by Fx.
type DayServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PetRepo   repository.PetRepository
	DayRepo   repository.DayRepository
	Logger    *slog.Logger
}

// NewDayService is the constructor for dayService.
func NewDayService(params DayServiceParams) usecase.DayUsecase {
	return &dayService{
		txManager: params.TxManager,
		petRepo:   params.PetRepo,
		dayRepo:   params.DayRepo,
		logger:    params.Logger,
	}
}

func (srv *dayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a tracked day for a pet. The day snapshots the pet's current
// monitoring mode and goal, starts progress at zero, and lazily writes the
// month and year markers of its period in the same transaction.
func (srv *dayService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateDayInput) (*usecase.DayOutput, error) {
	pet, err := srv.petRepo.FindByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet.UserID != userID {
		return nil, domainerrors.ErrPetNotFound
	}

	taken, err := srv.dayRepo.ExistsForDate(ctx, pet.ID, input.Day, input.Month, input.Year)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrDayExists
	}

	day := &entity.Day{
		UserID:           userID,
		PetID:            pet.ID,
		Day:              input.Day,
		Month:            input.Month,
		Year:             input.Year,
		MonitoringDietBy: pet.MonitoringDietBy,
		DietGoal:         pet.DietGoal,
		DietGoalProgress: 0,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Days().Create(ctx, day); err != nil {
			return err
		}

		monthExists, err := repoFactory.Months().Exists(ctx, pet.ID, input.Month, input.Year)
		if err != nil {
			return err
		}
		if !monthExists {
			month := &entity.Month{UserID: userID, PetID: pet.ID, Month: input.Month, Year: input.Year}
			if err := repoFactory.Months().Create(ctx, month); err != nil {
				return err
			}
		}

		yearExists, err := repoFactory.Years().Exists(ctx, pet.ID, input.Year)
		if err != nil {
			return err
		}
		if !yearExists {
			year := &entity.Year{UserID: userID, PetID: pet.ID, Year: input.Year}
			if err := repoFactory.Years().Create(ctx, year); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Day opened",
		slog.Any("dayID", day.ID),
		slog.Any("petID", pet.ID),
		slog.Int("day", input.Day),
		slog.Int("month", input.Month),
		slog.Int("year", input.Year),
	)

	return &usecase.DayOutput{Day: day}, nil
}
