package postgres

import (
	"context"

	"petmanager/internal/domain/repository"
	"petmanager/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenBlacklistRepository implements the domain.TokenBlacklistRepository interface using GORM.
type tokenBlacklistRepository struct {
	db *gorm.DB
}

// NewTokenBlacklistRepository is the constructor for tokenBlacklistRepository.
func NewTokenBlacklistRepository(db *gorm.DB) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{db: db}
}

// Add records a logged-out token. Re-adding the same token is a no-op.
func (repo *tokenBlacklistRepository) Add(ctx context.Context, token string) error {
	tokenM := &model.BlacklistedTokenModel{Token: token}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		return errors.Wrap(err, "failed to blacklist token")
	}

	return nil
}

// Contains reports whether the token has been blacklisted.
func (repo *tokenBlacklistRepository) Contains(ctx context.Context, token string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.BlacklistedTokenModel{}).
		Where("token = ?", token).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check token blacklist")
	}

	return count > 0, nil
}
