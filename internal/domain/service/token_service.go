package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTokenInvalid is returned by Decode for malformed or mis-signed tokens.
var ErrTokenInvalid = errors.New("token is invalid")

// Claims is the decoded content of a session token. Expiry is not enforced
// here; callers check ExpiresAt themselves so they control the failure mode.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and decodes signed session tokens.
type TokenService interface {
	Issue(userID uuid.UUID) (string, error)
	Decode(token string) (*Claims, error)
}
