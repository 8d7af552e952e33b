package impl

import (
	"context"
	"log/slog"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/domain/entity"
	"petmanager/internal/domain/repository"
	"petmanager/internal/usecase"

	"go.uber.org/fx"
)

// foodService implements the FoodUsecase interface.
type foodService struct {
	foodRepo repository.FoodRepository
	logger   *slog.Logger
}

// FoodServiceParams holds dependencies for foodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	FoodRepo repository.FoodRepository
	Logger   *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		foodRepo: params.FoodRepo,
		logger:   params.Logger,
	}
}

// Create adds a food to the shared catalog.
func (srv *foodService) Create(ctx context.Context, input usecase.CreateFoodInput) (*usecase.FoodOutput, error) {
	food := &entity.Food{
		Name:         input.Name,
		BaseCalories: input.BaseCalories,
	}

	if err := srv.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Food added to catalog", slog.Any("foodID", food.ID))

	return &usecase.FoodOutput{Food: food}, nil
}
