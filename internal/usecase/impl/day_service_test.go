package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/usecase"
)

func TestDayService_Create(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")
	pet := env.seedPet(t, user.ID, entity.MonitorByCalories, 750)

	out, err := env.days.Create(context.Background(), user.ID, usecase.CreateDayInput{
		PetID: pet.ID,
		Day:   15, Month: 6, Year: 2026,
	})
	require.NoError(t, err)

	day := out.Day
	// The day snapshots the pet's settings and starts at zero progress.
	assert.Equal(t, entity.MonitorByCalories, day.MonitoringDietBy)
	assert.InDelta(t, 750, day.DietGoal, 1e-9)
	assert.Zero(t, day.DietGoalProgress)
}

func TestDayService_CreateDuplicateDate(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")
	pet := env.seedPet(t, user.ID, entity.MonitorByMeals, 3)

	env.seedDay(t, user.ID, pet.ID, 15, 6, 2026)

	_, err := env.days.Create(context.Background(), user.ID, usecase.CreateDayInput{
		PetID: pet.ID,
		Day:   15, Month: 6, Year: 2026,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDayExists)

	// The same date under a different pet is fine.
	other := env.seedPet(t, user.ID, entity.MonitorByMeals, 3)
	env.seedDay(t, user.ID, other.ID, 15, 6, 2026)
}

func TestDayService_CreateLazyPeriodMarkers(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")
	pet := env.seedPet(t, user.ID, entity.MonitorByMeals, 3)

	env.seedDay(t, user.ID, pet.ID, 1, 6, 2026)
	env.seedDay(t, user.ID, pet.ID, 2, 6, 2026)
	env.seedDay(t, user.ID, pet.ID, 1, 7, 2026)

	// Three days across two months of one year: two month markers, one year marker.
	assert.Len(t, env.store.months, 2)
	assert.Len(t, env.store.years, 1)
}

func TestDayService_CreateForeignPet(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")
	other := env.seedVerifiedUser(t, "bob", "bob@example.com")
	pet := env.seedPet(t, other.ID, entity.MonitorByMeals, 3)

	_, err := env.days.Create(context.Background(), user.ID, usecase.CreateDayInput{
		PetID: pet.ID,
		Day:   15, Month: 6, Year: 2026,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}
