// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. Besides its login identity it carries the
// email-verification and password-reset state machines: each consists of an
// opaque token plus its expiry, set when the corresponding email is sent and
// cleared once consumed.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // The user's unique display name, usable as a login credential.
	Email        string    // The user's unique email, usable as a login credential.
	PasswordHash string    // Stores the bcrypt-hashed password.

	Verified             bool       // Whether the account's email has been verified.
	VerifyEmailToken     string     // Outstanding email-verification token, empty when none.
	VerifyTokenExpiresAt *time.Time // Expiry of the outstanding verification token.

	ResetPassToken      string     // Outstanding password-reset token, empty when none.
	ResetTokenExpiresAt *time.Time // Expiry of the outstanding reset token.

	// ChangedPasswordAt marks the moment of the last password change. Bearer
	// tokens issued before this moment are treated as revoked even though
	// they never enter the blacklist.
	ChangedPasswordAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PasswordChangedAfter reports whether the user's password was changed after
// the given moment (typically a token's issued-at timestamp).
func (u *User) PasswordChangedAfter(t time.Time) bool {
	return u.ChangedPasswordAt != nil && u.ChangedPasswordAt.After(t)
}
