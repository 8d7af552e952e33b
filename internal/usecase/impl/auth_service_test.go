package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/usecase"
)

func signupInput() usecase.SignupInput {
	return usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	}
}

func TestAuthService_Signup(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.auth.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	user := out.User
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed:secret-password", user.PasswordHash)
	assert.False(t, user.Verified)
	assert.NotEmpty(t, user.VerifyEmailToken)
	require.NotNil(t, user.VerifyTokenExpiresAt)
	assert.True(t, user.VerifyTokenExpiresAt.After(time.Now()))

	// The verification mail went out with the token.
	require.Equal(t, 1, env.mailer.sentCount())
	assert.Equal(t, "alice@example.com", env.mailer.sent[0].To)
	assert.Contains(t, env.mailer.sent[0].Body, user.VerifyEmailToken)
}

func TestAuthService_SignupDuplicate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	tests := []struct {
		name      string
		input     usecase.SignupInput
		wantField string
	}{
		{
			name:      "username taken",
			input:     usecase.SignupInput{Username: "alice", Email: "other@example.com", Password: "secret-password"},
			wantField: "username",
		},
		{
			name:      "email taken",
			input:     usecase.SignupInput{Username: "bob", Email: "alice@example.com", Password: "secret-password"},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Signup(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.TypeUniqueness, appErr.ErrorType())
			assert.Contains(t, appErr.Fields(), tt.wantField)
		})
	}

	// Both credentials taken reports both fields at once.
	_, err = env.auth.Signup(context.Background(), signupInput())
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Fields(), 2)
}

func TestAuthService_SignupMailFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.fail = assert.AnError

	_, err := env.auth.Signup(context.Background(), signupInput())
	require.Error(t, err)

	// The account must not survive a failed verification mail.
	assert.Empty(t, env.store.users)
}

func TestAuthService_ResendVerification(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.auth.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	firstToken := out.User.VerifyEmailToken

	err = env.auth.ResendVerification(context.Background(), usecase.ResendVerificationInput{Credential: "alice@example.com"})
	require.NoError(t, err)

	stored := env.store.users[out.User.ID]
	assert.NotEqual(t, firstToken, stored.VerifyEmailToken)
	assert.Equal(t, 2, env.mailer.sentCount())

	t.Run("unknown email", func(t *testing.T) {
		err := env.auth.ResendVerification(context.Background(), usecase.ResendVerificationInput{Credential: "nobody@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("already verified", func(t *testing.T) {
		stored.Verified = true

		err := env.auth.ResendVerification(context.Background(), usecase.ResendVerificationInput{Credential: "alice@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	})
}

func TestAuthService_VerifyAccount(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.auth.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	session, err := env.auth.VerifyAccount(context.Background(), out.User.VerifyEmailToken)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	stored := env.store.users[out.User.ID]
	assert.True(t, stored.Verified)
	assert.Empty(t, stored.VerifyEmailToken)

	t.Run("unknown token", func(t *testing.T) {
		_, err := env.auth.VerifyAccount(context.Background(), "no-such-token")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := env.auth.VerifyAccount(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	})
}

func TestAuthService_VerifyAccountExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.auth.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	expired := time.Now().Add(-time.Second)
	env.store.users[out.User.ID].VerifyTokenExpiresAt = &expired

	_, err = env.auth.VerifyAccount(context.Background(), out.User.VerifyEmailToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	env.seedVerifiedUser(t, "alice", "alice@example.com")

	t.Run("by username", func(t *testing.T) {
		session, err := env.auth.Login(context.Background(), usecase.LoginInput{Credential: "alice", Password: "secret-password"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("by email", func(t *testing.T) {
		_, err := env.auth.Login(context.Background(), usecase.LoginInput{Credential: "alice@example.com", Password: "secret-password"})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login(context.Background(), usecase.LoginInput{Credential: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown credential", func(t *testing.T) {
		_, err := env.auth.Login(context.Background(), usecase.LoginInput{Credential: "nobody", Password: "secret-password"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_LoginUnverified(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	_, err = env.auth.Login(context.Background(), usecase.LoginInput{Credential: "alice", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrNotVerified)
}

func TestAuthService_LogoutBlacklistsToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")

	token := env.tokenSvc.IssueAt(user.ID, time.Now())

	validated, err := env.auth.ValidateSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.ID)

	require.NoError(t, env.auth.Logout(context.Background(), token))

	_, err = env.auth.ValidateSession(context.Background(), token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenBlacklisted)
}

func TestAuthService_ValidateSession(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")

	t.Run("missing token", func(t *testing.T) {
		_, err := env.auth.ValidateSession(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := env.auth.ValidateSession(context.Background(), "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		token := env.tokenSvc.IssueAt(user.ID, time.Now().Add(-2*time.Hour))

		_, err := env.auth.ValidateSession(context.Background(), token)
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("token just inside expiry", func(t *testing.T) {
		token := env.tokenSvc.IssueAt(user.ID, time.Now().Add(-time.Hour).Add(5*time.Second))

		_, err := env.auth.ValidateSession(context.Background(), token)
		assert.NoError(t, err)
	})

	t.Run("password changed after issue", func(t *testing.T) {
		token := env.tokenSvc.IssueAt(user.ID, time.Now().Add(-time.Minute))
		changed := time.Now()
		env.store.users[user.ID].ChangedPasswordAt = &changed
		defer func() { env.store.users[user.ID].ChangedPasswordAt = nil }()

		_, err := env.auth.ValidateSession(context.Background(), token)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordChanged)
	})

	t.Run("user gone", func(t *testing.T) {
		ghost := env.seedVerifiedUser(t, "ghost", "ghost@example.com")
		token := env.tokenSvc.IssueAt(ghost.ID, time.Now())
		delete(env.store.users, ghost.ID)

		_, err := env.auth.ValidateSession(context.Background(), token)
		assert.ErrorIs(t, err, domainerrors.ErrUserGone)
	})

	t.Run("unverified account", func(t *testing.T) {
		env.store.users[user.ID].Verified = false
		defer func() { env.store.users[user.ID].Verified = true }()

		token := env.tokenSvc.IssueAt(user.ID, time.Now())

		_, err := env.auth.ValidateSession(context.Background(), token)
		assert.ErrorIs(t, err, domainerrors.ErrNotVerified)
	})
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")

	err := env.auth.ForgotPassword(context.Background(), usecase.ForgotPasswordInput{Credential: "alice@example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, env.mailer.sentCount())

	resetToken := env.store.users[user.ID].ResetPassToken
	require.NotEmpty(t, resetToken)

	// A session issued before the reset must die with it.
	oldToken := env.tokenSvc.IssueAt(user.ID, time.Now())

	err = env.auth.ResetPassword(context.Background(), resetToken, usecase.ResetPasswordInput{Password: "brand-new-password"})
	require.NoError(t, err)

	stored := env.store.users[user.ID]
	assert.Equal(t, "hashed:brand-new-password", stored.PasswordHash)
	assert.Empty(t, stored.ResetPassToken)
	require.NotNil(t, stored.ChangedPasswordAt)

	_, err = env.auth.ValidateSession(context.Background(), oldToken)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordChanged)

	t.Run("reused token", func(t *testing.T) {
		err := env.auth.ResetPassword(context.Background(), resetToken, usecase.ResetPasswordInput{Password: "another-password"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_ResetPasswordExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedVerifiedUser(t, "alice", "alice@example.com")

	require.NoError(t, env.auth.ForgotPassword(context.Background(), usecase.ForgotPasswordInput{Credential: "alice@example.com"}))

	expired := time.Now().Add(-time.Second)
	env.store.users[user.ID].ResetTokenExpiresAt = &expired

	err := env.auth.ResetPassword(context.Background(), env.store.users[user.ID].ResetPassToken,
		usecase.ResetPasswordInput{Password: "brand-new-password"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}
