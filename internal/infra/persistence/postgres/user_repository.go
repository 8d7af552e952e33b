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
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. A duplicate username or email surfaces as a
// uniqueness error with the offending field named.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewUniqueness(map[string]string{
				"account": "This username or email is already taken.",
			})
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidation(map[string]string{
				"account": "Missing required account information.",
			})
		}
		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves all fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewUniqueness(map[string]string{
				"account": "This username or email is already taken.",
			})
		}
		return errors.Wrap(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// LockByID takes a FOR UPDATE lock on the user's row. Outside a transaction
// the lock releases immediately, so this is only meaningful through the
// TransactionManager.
func (repo *userRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrUserNotFound
		}
		return errors.Wrap(err, "failed to lock user")
	}

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves a single user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByVerifyToken retrieves the user holding the given verification token.
func (repo *userRepository) FindByVerifyToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "verify_email_token = ?", token)
}

// FindByResetToken retrieves the user holding the given password reset token.
func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "reset_pass_token = ?", token)
}

// ExistsByUsername reports whether a user with the given username exists.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "username = ?", username)
}

// ExistsByEmail reports whether a user with the given email exists.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		Username:             data.Username,
		Email:                data.Email,
		PasswordHash:         data.PasswordHash,
		Verified:             data.Verified,
		VerifyEmailToken:     data.VerifyEmailToken,
		VerifyTokenExpiresAt: data.VerifyTokenExpiresAt,
		ResetPassToken:       data.ResetPassToken,
		ResetTokenExpiresAt:  data.ResetTokenExpiresAt,
		ChangedPasswordAt:    data.ChangedPasswordAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		Username:             data.Username,
		Email:                data.Email,
		PasswordHash:         data.PasswordHash,
		Verified:             data.Verified,
		VerifyEmailToken:     data.VerifyEmailToken,
		VerifyTokenExpiresAt: data.VerifyTokenExpiresAt,
		ResetPassToken:       data.ResetPassToken,
		ResetTokenExpiresAt:  data.ResetTokenExpiresAt,
		ChangedPasswordAt:    data.ChangedPasswordAt,
	}
}
