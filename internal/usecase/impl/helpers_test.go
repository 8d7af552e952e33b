package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"petmanager/config"
	"petmanager/internal/domain/entity"
	"petmanager/internal/usecase"
)

// testEnv wires every service over one shared fake store.
type testEnv struct {
	store    *fakeStore
	tokenSvc *fakeTokenService
	mailer   *fakeMailer

	auth         usecase.AuthUsecase
	pets         usecase.PetUsecase
	days         usecase.DayUsecase
	meals        usecase.MealUsecase
	appointments usecase.AppointmentUsecase
	foods        usecase.FoodUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	tx := &fakeTxManager{store: store}
	tokenSvc := newFakeTokenService(time.Hour)
	mailer := &fakeMailer{}
	logger := testLogger()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     4,
			JWTExpiry:      time.Hour,
			VerifyTokenTTL: 24 * time.Hour,
			ResetTokenTTL:  10 * time.Minute,
			MaxPetsPerUser: 2,
		},
	}

	return &testEnv{
		store:    store,
		tokenSvc: tokenSvc,
		mailer:   mailer,
		auth: NewAuthService(AuthServiceParams{
			TxManager:     tx,
			UserRepo:      &fakeUserRepo{store: store},
			BlacklistRepo: &fakeBlacklistRepo{store: store},
			Hasher:        fakeHasher{},
			TokenService:  tokenSvc,
			Mailer:        mailer,
			Config:        cfg,
			Logger:        logger,
		}),
		pets: NewPetService(PetServiceParams{
			TxManager: tx,
			PetRepo:   &fakePetRepo{store: store},
			Config:    cfg,
			Logger:    logger,
		}),
		days: NewDayService(DayServiceParams{
			TxManager: tx,
			PetRepo:   &fakePetRepo{store: store},
			DayRepo:   &fakeDayRepo{store: store},
			Logger:    logger,
		}),
		meals: NewMealService(MealServiceParams{
			TxManager: tx,
			DayRepo:   &fakeDayRepo{store: store},
			MealRepo:  &fakeMealRepo{store: store},
			FoodRepo:  &fakeFoodRepo{store: store},
			Logger:    logger,
		}),
		appointments: NewAppointmentService(AppointmentServiceParams{
			TxManager: tx,
			PetRepo:   &fakePetRepo{store: store},
			ApptRepo:  &fakeAppointmentRepo{store: store},
			Logger:    logger,
		}),
		foods: NewFoodService(FoodServiceParams{
			FoodRepo: &fakeFoodRepo{store: store},
			Logger:   logger,
		}),
	}
}

// seedVerifiedUser inserts a verified account directly into the store.
func (env *testEnv) seedVerifiedUser(t *testing.T, username, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "hashed:secret-password",
		Verified:     true,
	}
	env.store.users[user.ID] = user

	return user
}

// seedPet registers a pet through the usecase for realistic defaults.
func (env *testEnv) seedPet(t *testing.T, userID uuid.UUID, mode entity.MonitoringMode, goal float64) *entity.Pet {
	t.Helper()

	out, err := env.pets.Create(context.Background(), userID, usecase.CreatePetInput{
		Name:             "Rex",
		Age:              3,
		AgeIn:            "years",
		Species:          "dog",
		MonitoringDietBy: mode.String(),
		DietGoal:         goal,
	})
	require.NoError(t, err)

	return out.Pet
}

// seedDay opens a tracked day for the pet.
func (env *testEnv) seedDay(t *testing.T, userID, petID uuid.UUID, d, m, y int) *entity.Day {
	t.Helper()

	out, err := env.days.Create(context.Background(), userID, usecase.CreateDayInput{
		PetID: petID,
		Day:   d,
		Month: m,
		Year:  y,
	})
	require.NoError(t, err)

	return out.Day
}

// seedFood adds a catalog food.
func (env *testEnv) seedFood(t *testing.T, name string, baseCalories float64) *entity.Food {
	t.Helper()

	out, err := env.foods.Create(context.Background(), usecase.CreateFoodInput{
		Name:         name,
		BaseCalories: baseCalories,
	})
	require.NoError(t, err)

	return out.Food
}

// dayProgress reads the current progress of a day straight from the store.
func (env *testEnv) dayProgress(t *testing.T, dayID uuid.UUID) float64 {
	t.Helper()

	day, ok := env.store.days[dayID]
	require.True(t, ok)

	return day.DietGoalProgress
}
