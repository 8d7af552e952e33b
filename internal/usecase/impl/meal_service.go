package impl

import (
	"context"
	"log/slog"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/domain/diet"
	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	txManager repository.TransactionManager
	dayRepo   repository.DayRepository
	mealRepo  repository.MealRepository
	foodRepo  repository.FoodRepository
	logger    *slog.Logger
}

// MealServiceParams holds dependencies for mealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	DayRepo   repository.DayRepository
	MealRepo  repository.MealRepository
	FoodRepo  repository.FoodRepository
	Logger    *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		txManager: params.TxManager,
		dayRepo:   params.DayRepo,
		mealRepo:  params.MealRepo,
		foodRepo:  params.FoodRepo,
		logger:    params.Logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a meal on a day the user owns and moves the day's progress
// in the same transaction: one unit on by-meals days, the computed calorie
// total on by-calories days.
func (srv *mealService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateMealInput) (*usecase.MealOutput, error) {
	day, err := srv.ownedDay(ctx, userID, input.DayID)
	if err != nil {
		return nil, err
	}

	foods, err := srv.resolveFoods(ctx, input.Foods)
	if err != nil {
		return nil, err
	}

	mode := day.MonitoringDietBy
	if err := diet.ValidatePayload(mode, diet.OperationCreate, input.Description, foods, input.Foods != nil); err != nil {
		return nil, err
	}

	meal := &entity.Meal{
		UserID:      userID,
		PetID:       day.PetID,
		DayID:       day.ID,
		Description: input.Description,
		Foods:       foods,
	}
	if mode == entity.MonitorByCalories {
		meal.CaloriesTotal = diet.MealCalories(foods)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Meals().Create(ctx, meal); err != nil {
			return err
		}

		return repoFactory.Days().AddProgress(ctx, day.ID, diet.CreateDelta(mode, *meal))
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Meal recorded", slog.Any("mealID", meal.ID), slog.Any("dayID", day.ID))

	return &usecase.MealOutput{Meal: meal}, nil
}

// Update modifies a meal. On by-meals days only the description can change
// and progress never moves. On by-calories days a provided non-empty foods
// list replaces the old one and progress shifts by the calorie difference,
// atomically with the meal write.
func (srv *mealService) Update(ctx context.Context, userID, mealID uuid.UUID, input usecase.UpdateMealInput) (*usecase.MealOutput, error) {
	meal, err := srv.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	day, err := srv.dayRepo.FindByID(ctx, meal.DayID)
	if err != nil {
		return nil, err
	}
	mode := day.MonitoringDietBy

	var newFoods []entity.MealFood
	foodsProvided := input.Foods != nil
	if foodsProvided {
		newFoods, err = srv.resolveFoods(ctx, *input.Foods)
		if err != nil {
			return nil, err
		}
	}

	description := ""
	if input.Description != nil {
		description = *input.Description
	}
	if err := diet.ValidatePayload(mode, diet.OperationUpdate, description, newFoods, foodsProvided); err != nil {
		return nil, err
	}

	if input.Description != nil {
		meal.Description = *input.Description
	}

	delta, moves := diet.UpdateDelta(mode, *meal, newFoods)
	if moves {
		meal.Foods = newFoods
		meal.CaloriesTotal = diet.MealCalories(newFoods)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Meals().Update(ctx, meal); err != nil {
			return err
		}
		if !moves {
			return nil
		}

		return repoFactory.Days().AddProgress(ctx, day.ID, delta)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.MealOutput{Meal: meal}, nil
}

// Delete removes a meal and reverses its exact contribution to the day's
// progress in the same transaction.
func (srv *mealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	meal, err := srv.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return err
	}

	day, err := srv.dayRepo.FindByID(ctx, meal.DayID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Meals().Delete(ctx, meal.ID); err != nil {
			return err
		}

		return repoFactory.Days().AddProgress(ctx, day.ID, diet.DeleteDelta(day.MonitoringDietBy, *meal))
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Meal removed", slog.Any("mealID", mealID), slog.Any("dayID", day.ID))

	return nil
}

// resolveFoods looks up each referenced catalog food and copies its base
// calories onto the meal line.
func (srv *mealService) resolveFoods(ctx context.Context, inputs []usecase.MealFoodInput) ([]entity.MealFood, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	foods := make([]entity.MealFood, 0, len(inputs))
	for _, in := range inputs {
		food, err := srv.foodRepo.FindByID(ctx, in.FoodID)
		if err != nil {
			return nil, err
		}

		foods = append(foods, entity.MealFood{
			FoodID:       food.ID,
			Quantity:     in.Quantity,
			BaseCalories: food.BaseCalories,
		})
	}

	return foods, nil
}

func (srv *mealService) ownedDay(ctx context.Context, userID, dayID uuid.UUID) (*entity.Day, error) {
	day, err := srv.dayRepo.FindByID(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day.UserID != userID {
		return nil, domainerrors.ErrDayNotFound
	}

	return day, nil
}

func (srv *mealService) ownedMeal(ctx context.Context, userID, mealID uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if meal.UserID != userID {
		return nil, domainerrors.ErrMealNotFound
	}

	return meal, nil
}
