// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"petmanager/config"
	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/domain/service"
	"petmanager/internal/infra/auth"
	"petmanager/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	blacklistRepo  repository.TokenBlacklistRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	mailer         service.Mailer
	jwtExpiry      time.Duration
	verifyTokenTTL time.Duration
	resetTokenTTL  time.Duration
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	BlacklistRepo repository.TokenBlacklistRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Mailer        service.Mailer
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		blacklistRepo:  params.BlacklistRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailer:         params.Mailer,
		jwtExpiry:      params.Config.Auth.JWTExpiry,
		verifyTokenTTL: params.Config.Auth.VerifyTokenTTL,
		resetTokenTTL:  params.Config.Auth.ResetTokenTTL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and mails its verification token. The user
// row and the mail delivery share one transaction, so a failed mail leaves
// no half-registered account behind.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	fields := map[string]string{}

	usernameTaken, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username uniqueness")
	}
	if usernameTaken {
		fields["username"] = "This username is already taken."
	}

	emailTaken, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}
	if emailTaken {
		fields["email"] = "This email is already taken."
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewUniqueness(fields)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	verifyToken, expiresAt, err := auth.NewEmailToken(srv.verifyTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	user := &entity.User{
		Username:             input.Username,
		Email:                input.Email,
		PasswordHash:         hash,
		VerifyEmailToken:     verifyToken,
		VerifyTokenExpiresAt: &expiresAt,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Users().Create(ctx, user); err != nil {
			return err
		}

		return srv.sendVerificationMail(ctx, user.Email, verifyToken)
	})
	if err != nil {
		srv.log(ctx).Error("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.Any("userID", user.ID))

	return &usecase.SignupOutput{User: user}, nil
}

// ResendVerification rotates the verification token of an unverified account
// and mails it again.
func (srv *authService) ResendVerification(ctx context.Context, input usecase.ResendVerificationInput) error {
	user, err := srv.findByCredential(ctx, input.Credential)
	if err != nil {
		return err
	}
	if user.Verified {
		return domainerrors.ErrAlreadyVerified
	}

	verifyToken, expiresAt, err := auth.NewEmailToken(srv.verifyTokenTTL)
	if err != nil {
		return errors.Wrap(err, "failed to generate verification token")
	}

	user.VerifyEmailToken = verifyToken
	user.VerifyTokenExpiresAt = &expiresAt

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Users().Update(ctx, user); err != nil {
			return err
		}

		return srv.sendVerificationMail(ctx, user.Email, verifyToken)
	})
}

// VerifyAccount marks the holder of a valid verification token as verified
// and opens a session for them.
func (srv *authService) VerifyAccount(ctx context.Context, verifyToken string) (*usecase.SessionOutput, error) {
	if verifyToken == "" {
		return nil, domainerrors.ErrNoToken
	}

	user, err := srv.userRepo.FindByVerifyToken(ctx, verifyToken)
	if err != nil {
		return nil, err
	}

	if user.VerifyTokenExpiresAt != nil && user.VerifyTokenExpiresAt.Before(time.Now()) {
		return nil, domainerrors.ErrTokenExpired
	}

	user.Verified = true
	user.VerifyEmailToken = ""
	user.VerifyTokenExpiresAt = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return srv.openSession(user)
}

// Login authenticates by username or email plus password. Only verified
// accounts may log in.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	user, err := srv.findByCredential(ctx, input.Credential)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Verified {
		return nil, domainerrors.ErrNotVerified
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return srv.openSession(user)
}

// Logout blacklists the presented session token. The record is append only;
// the token stays unusable until it ages out of its own expiry.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrNoToken
	}

	return srv.blacklistRepo.Add(ctx, token)
}

// ForgotPassword issues a short-lived reset token and mails it. Only
// verified accounts may start a reset.
func (srv *authService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	user, err := srv.findByCredential(ctx, input.Credential)
	if err != nil {
		return err
	}
	if !user.Verified {
		return domainerrors.ErrNotVerified
	}

	resetToken, expiresAt, err := auth.NewEmailToken(srv.resetTokenTTL)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	user.ResetPassToken = resetToken
	user.ResetTokenExpiresAt = &expiresAt

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Users().Update(ctx, user); err != nil {
			return err
		}

		subject := "Reset your password"
		body := fmt.Sprintf("Use this token to reset your password within %s: %s", srv.resetTokenTTL, resetToken)

		return srv.mailer.Send(ctx, user.Email, subject, body)
	})
}

// ResetPassword replaces the password of the holder of a valid reset token.
// ChangedPasswordAt is stamped so every session issued before this moment
// becomes invalid.
func (srv *authService) ResetPassword(ctx context.Context, resetToken string, input usecase.ResetPasswordInput) error {
	if resetToken == "" {
		return domainerrors.ErrNoToken
	}

	user, err := srv.userRepo.FindByResetToken(ctx, resetToken)
	if err != nil {
		return err
	}

	if user.ResetTokenExpiresAt != nil && user.ResetTokenExpiresAt.Before(time.Now()) {
		return domainerrors.ErrTokenExpired
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user.PasswordHash = hash
	user.ResetPassToken = ""
	user.ResetTokenExpiresAt = nil
	user.ChangedPasswordAt = &now

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

// ValidateSession runs the full check chain for a bearer token, in order:
// blacklist, signature, expiry, user existence, password change, verified.
func (srv *authService) ValidateSession(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrNoToken
	}

	blacklisted, err := srv.blacklistRepo.Contains(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token blacklist")
	}
	if blacklisted {
		return nil, domainerrors.ErrTokenBlacklisted
	}

	claims, err := srv.tokenService.Decode(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	if claims.ExpiresAt.Before(time.Now()) {
		return nil, domainerrors.ErrTokenExpired
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUserGone
		}

		return nil, err
	}

	if user.PasswordChangedAfter(claims.IssuedAt) {
		return nil, domainerrors.ErrPasswordChanged
	}

	if !user.Verified {
		return nil, domainerrors.ErrNotVerified
	}

	return user, nil
}

// findByCredential resolves an account by username first, then by email.
func (srv *authService) findByCredential(ctx context.Context, credential string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, credential)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return srv.userRepo.FindByEmail(ctx, credential)
	}

	return user, err
}

func (srv *authService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{
		Token:     token,
		ExpiresAt: time.Now().Add(srv.jwtExpiry),
		User:      user,
	}, nil
}

func (srv *authService) sendVerificationMail(ctx context.Context, email, verifyToken string) error {
	subject := "Verify your account"
	body := fmt.Sprintf("Use this token to verify your account: %s", verifyToken)

	return srv.mailer.Send(ctx, email, subject, body)
}
