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

// foodRepository implements the domain.FoodRepository interface using GORM.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

// Create persists a catalog food.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := &model.FoodModel{
		ID:           food.ID,
		Name:         food.Name,
		BaseCalories: food.BaseCalories,
	}

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		return errors.Wrap(err, "failed to create food")
	}

	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt

	return nil
}

// FindByID retrieves a single catalog food by its unique ID.
func (repo *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodM model.FoodModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}
		return nil, errors.Wrap(err, "failed to find food")
	}

	return &entity.Food{
		ID:           foodM.ID,
		Name:         foodM.Name,
		BaseCalories: foodM.BaseCalories,
		CreatedAt:    foodM.CreatedAt,
	}, nil
}
