// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"petmanager/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=6,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResendVerificationInput identifies the account to re-send the
// verification mail to. Credential accepts either the username or the email.
type ResendVerificationInput struct {
	Credential string `json:"credential" validate:"required"`
}

// LoginInput defines the data required to log in. Credential accepts either
// the username or the email address.
type LoginInput struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// ForgotPasswordInput identifies the account that requested a reset mail.
// Credential accepts either the username or the email.
type ForgotPasswordInput struct {
	Credential string `json:"credential" validate:"required"`
}

// ResetPasswordInput carries the new password; the reset token travels as a
// bearer token.
type ResetPasswordInput struct {
	Password string `json:"password" validate:"required,min=8"`
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's basic information.
type SignupOutput struct {
	User *entity.User
}

// SessionOutput returns the session token issued after verification or login.
type SessionOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	ResendVerification(ctx context.Context, input ResendVerificationInput) error
	VerifyAccount(ctx context.Context, verifyToken string) (*SessionOutput, error)
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, resetToken string, input ResetPasswordInput) error

	// ValidateSession runs the full bearer-token check chain and returns the
	// authenticated user. Used by the auth middleware on every protected route.
	ValidateSession(ctx context.Context, token string) (*entity.User, error)
}
