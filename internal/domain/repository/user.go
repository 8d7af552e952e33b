package repository

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// UserRepository persists user accounts and their verification and reset
// tokens. Find methods return domain ErrUserNotFound when nothing matches.
// LockByID takes a row lock on the user, held until the surrounding
// transaction ends, so per-user read-then-write checks serialize.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	LockByID(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByVerifyToken(ctx context.Context, token string) (*entity.User, error)
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
