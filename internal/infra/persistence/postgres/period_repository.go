package postgres

import (
	"context"

	"petmanager/internal/domain/entity"
	"petmanager/internal/domain/repository"
	"petmanager/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// monthRepository implements the domain.MonthRepository interface using GORM.
type monthRepository struct {
	db *gorm.DB
}

// NewMonthRepository is the constructor for monthRepository.
func NewMonthRepository(db *gorm.DB) repository.MonthRepository {
	return &monthRepository{db: db}
}

// Create persists a month marker. A concurrent duplicate is swallowed; the
// marker has write-once semantics and either writer's row is equivalent.
func (repo *monthRepository) Create(ctx context.Context, month *entity.Month) error {
	monthM := &model.MonthModel{
		ID:     month.ID,
		UserID: month.UserID,
		PetID:  month.PetID,
		Month:  month.Month,
		Year:   month.Year,
	}

	if err := repo.db.WithContext(ctx).Create(monthM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		return errors.Wrap(err, "failed to create month")
	}

	month.ID = monthM.ID
	month.CreatedAt = monthM.CreatedAt

	return nil
}

// Exists reports whether the pet already has a marker for the period.
func (repo *monthRepository) Exists(ctx context.Context, petID uuid.UUID, month, year int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.MonthModel{}).
		Where("pet_id = ? AND month = ? AND year = ?", petID, month, year).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count months")
	}

	return count > 0, nil
}

// DeleteByPetID removes every month marker of a pet.
func (repo *monthRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.MonthModel{}, "pet_id = ?", petID).Error; err != nil {
		return errors.Wrap(err, "failed to delete months")
	}

	return nil
}

// yearRepository implements the domain.YearRepository interface using GORM.
type yearRepository struct {
	db *gorm.DB
}

// NewYearRepository is the constructor for yearRepository.
func NewYearRepository(db *gorm.DB) repository.YearRepository {
	return &yearRepository{db: db}
}

// Create persists a year marker with the same semantics as month markers.
func (repo *yearRepository) Create(ctx context.Context, year *entity.Year) error {
	yearM := &model.YearModel{
		ID:     year.ID,
		UserID: year.UserID,
		PetID:  year.PetID,
		Year:   year.Year,
	}

	if err := repo.db.WithContext(ctx).Create(yearM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		return errors.Wrap(err, "failed to create year")
	}

	year.ID = yearM.ID
	year.CreatedAt = yearM.CreatedAt

	return nil
}

// Exists reports whether the pet already has a marker for the year.
func (repo *yearRepository) Exists(ctx context.Context, petID uuid.UUID, year int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.YearModel{}).
		Where("pet_id = ? AND year = ?", petID, year).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count years")
	}

	return count > 0, nil
}

// DeleteByPetID removes every year marker of a pet.
func (repo *yearRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.YearModel{}, "pet_id = ?", petID).Error; err != nil {
		return errors.Wrap(err, "failed to delete years")
	}

	return nil
}
