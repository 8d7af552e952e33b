package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petmanager/internal/usecase"
)

func TestFoodService_Create(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.foods.Create(context.Background(), usecase.CreateFoodInput{
		Name:         "salmon",
		BaseCalories: 208,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.Food.ID)
	assert.Equal(t, "salmon", out.Food.Name)
	assert.InDelta(t, 208, out.Food.BaseCalories, 1e-9)
	assert.Contains(t, env.store.foods, out.Food.ID)
}
