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

// mealRepository implements the domain.MealRepository interface using GORM.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

// Create persists a meal together with its food lines.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDayNotFound
		}

		return errors.Wrap(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// Update saves a meal and replaces its food lines wholesale.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).
		Delete(&model.MealFoodModel{}, "meal_id = ?", meal.ID).Error; err != nil {
		return errors.Wrap(err, "failed to clear meal foods")
	}

	if err := repo.db.WithContext(ctx).Save(mealM).Error; err != nil {
		return errors.Wrap(err, "failed to update meal")
	}

	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// Delete removes a meal and its food lines.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.MealFoodModel{}, "meal_id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete meal foods")
	}

	if err := repo.db.WithContext(ctx).Delete(&model.MealModel{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete meal")
	}

	return nil
}

// FindByID retrieves a single meal with its food lines preloaded.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel
	if err := repo.db.WithContext(ctx).Preload("Foods").Where("id = ?", id).First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}
		return nil, errors.Wrap(err, "failed to find meal")
	}

	return toMealDomain(&mealM), nil
}

// DeleteByPetID removes every meal of a pet, food lines included.
func (repo *mealRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("meal_id IN (?)", repo.db.Model(&model.MealModel{}).Select("id").Where("pet_id = ?", petID)).
		Delete(&model.MealFoodModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete meal foods")
	}

	if err := repo.db.WithContext(ctx).Delete(&model.MealModel{}, "pet_id = ?", petID).Error; err != nil {
		return errors.Wrap(err, "failed to delete meals")
	}

	return nil
}

// --- Mapper Functions ---

// toMealDomain converts a GORM MealModel to a domain Meal entity.
func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	foods := make([]entity.MealFood, 0, len(data.Foods))
	for _, f := range data.Foods {
		foods = append(foods, entity.MealFood{
			FoodID:       f.FoodID,
			Quantity:     f.Quantity,
			BaseCalories: f.BaseCalories,
		})
	}

	return &entity.Meal{
		ID:            data.ID,
		UserID:        data.UserID,
		PetID:         data.PetID,
		DayID:         data.DayID,
		Description:   data.Description,
		Foods:         foods,
		CaloriesTotal: data.CaloriesTotal,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromMealDomain converts a domain Meal entity to a GORM MealModel for persistence.
func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	foods := make([]model.MealFoodModel, 0, len(data.Foods))
	for _, f := range data.Foods {
		foods = append(foods, model.MealFoodModel{
			MealID:       data.ID,
			FoodID:       f.FoodID,
			Quantity:     f.Quantity,
			BaseCalories: f.BaseCalories,
		})
	}

	return &model.MealModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PetID:         data.PetID,
		DayID:         data.DayID,
		Description:   data.Description,
		CaloriesTotal: data.CaloriesTotal,
		Foods:         foods,
	}
}
