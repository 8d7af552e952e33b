package main

import (
	"context"
	"log/slog"
	"os"

	"petmanager/config"
	"petmanager/internal/delivery"
	"petmanager/internal/delivery/http"
	"petmanager/internal/delivery/http/middleware"
	"petmanager/internal/delivery/http/router/handler"
	"petmanager/internal/infra/auth"
	logs "petmanager/internal/infra/log"
	"petmanager/internal/infra/mail"
	"petmanager/internal/infra/persistence/postgres"
	"petmanager/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewPetRepository,
			postgres.NewDayRepository,
			postgres.NewMonthRepository,
			postgres.NewYearRepository,
			postgres.NewMealRepository,
			postgres.NewAppointmentRepository,
			postgres.NewFoodRepository,
			postgres.NewTokenBlacklistRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPetService,
			impl.NewDayService,
			impl.NewMealService,
			impl.NewAppointmentService,
			impl.NewFoodService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPetHandler,
			handler.NewDayHandler,
			handler.NewMealHandler,
			handler.NewAppointmentHandler,
			handler.NewFoodHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
