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

// dayRepository implements the domain.DayRepository interface using GORM.
type dayRepository struct {
	db *gorm.DB
}

// NewDayRepository is the constructor for dayRepository.
func NewDayRepository(db *gorm.DB) repository.DayRepository {
	return &dayRepository{db: db}
}

// Create persists a new tracked day. The composite unique index turns a
// concurrent duplicate into the day-exists conflict.
func (repo *dayRepository) Create(ctx context.Context, day *entity.Day) error {
	dayM := fromDayDomain(day)

	if err := repo.db.WithContext(ctx).Create(dayM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDayExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPetNotFound
		}
		return errors.Wrap(err, "failed to create day")
	}

	day.ID = dayM.ID
	day.CreatedAt = dayM.CreatedAt

	return nil
}

// FindByID retrieves a single day by its unique ID.
func (repo *dayRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Day, error) {
	var dayM model.DayModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&dayM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDayNotFound
		}
		return nil, errors.Wrap(err, "failed to find day")
	}

	return toDayDomain(&dayM), nil
}

// ExistsForDate reports whether the pet already has a day for the date.
func (repo *dayRepository) ExistsForDate(ctx context.Context, petID uuid.UUID, day, month, year int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.DayModel{}).
		Where("pet_id = ? AND day = ? AND month = ? AND year = ?", petID, day, month, year).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count days")
	}

	return count > 0, nil
}

// AddProgress applies a relative delta to diet_goal_progress. The update is
// expressed against the stored value so concurrent meal writes compose
// instead of overwriting each other.
func (repo *dayRepository) AddProgress(ctx context.Context, dayID uuid.UUID, delta float64) error {
	result := repo.db.WithContext(ctx).Model(&model.DayModel{}).
		Where("id = ?", dayID).
		Update("diet_goal_progress", gorm.Expr("diet_goal_progress + ?", delta))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update day progress")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDayNotFound
	}

	return nil
}

// DeleteByPetID removes every day of a pet, for the pet-delete cascade.
func (repo *dayRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.DayModel{}, "pet_id = ?", petID).Error; err != nil {
		return errors.Wrap(err, "failed to delete days")
	}

	return nil
}

// --- Mapper Functions ---

// toDayDomain converts a GORM DayModel to a domain Day entity.
func toDayDomain(data *model.DayModel) *entity.Day {
	if data == nil {
		return nil
	}

	return &entity.Day{
		ID:               data.ID,
		UserID:           data.UserID,
		PetID:            data.PetID,
		Day:              data.Day,
		Month:            data.Month,
		Year:             data.Year,
		MonitoringDietBy: entity.MonitoringMode(data.MonitoringDietBy),
		DietGoal:         data.DietGoal,
		DietGoalProgress: data.DietGoalProgress,
		CreatedAt:        data.CreatedAt,
	}
}

// fromDayDomain converts a domain Day entity to a GORM DayModel for persistence.
func fromDayDomain(data *entity.Day) *model.DayModel {
	if data == nil {
		return nil
	}

	return &model.DayModel{
		ID:               data.ID,
		UserID:           data.UserID,
		PetID:            data.PetID,
		Day:              data.Day,
		Month:            data.Month,
		Year:             data.Year,
		MonitoringDietBy: data.MonitoringDietBy.String(),
		DietGoal:         data.DietGoal,
		DietGoalProgress: data.DietGoalProgress,
	}
}
