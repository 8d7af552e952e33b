package repository

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// DayRepository persists tracked days. AddProgress applies a relative delta
// to diet_goal_progress so concurrent meal writes never lose updates.
type DayRepository interface {
	Create(ctx context.Context, day *entity.Day) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Day, error)
	ExistsForDate(ctx context.Context, petID uuid.UUID, day, month, year int) (bool, error)
	AddProgress(ctx context.Context, dayID uuid.UUID, delta float64) error
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}

// MonthRepository persists the month markers that exist so clients can list
// which months of a year hold tracked days.
type MonthRepository interface {
	Create(ctx context.Context, month *entity.Month) error
	Exists(ctx context.Context, petID uuid.UUID, month, year int) (bool, error)
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}

// YearRepository persists year markers, the coarsest tracking grain.
type YearRepository interface {
	Create(ctx context.Context, year *entity.Year) error
	Exists(ctx context.Context, petID uuid.UUID, year int) (bool, error)
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}
