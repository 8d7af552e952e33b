// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/delivery/http/response"
	"petmanager/internal/domain/entity"
	"petmanager/internal/usecase"
)

// AuthHandler holds dependencies for account lifecycle handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// userView is the safe projection of an account returned by the API.
type userView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

type sessionView struct {
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expiresAt"`
	User      userView `json:"user"`
}

func toSessionView(session *usecase.SessionOutput) sessionView {
	return sessionView{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		User:      toUserView(session.User),
	}
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid signup payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "Account registered. Please check your email to verify it.")
}

// ResendVerification re-sends the verification mail.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var input usecase.ResendVerificationInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ResendVerification(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification email sent.")
}

// VerifyAccount verifies the account whose token travels as the bearer token.
func (h *AuthHandler) VerifyAccount(c echo.Context) error {
	token := deliverycontext.GetAuthToken(c)

	session, err := h.uc.VerifyAccount(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionView(session), "Account verified.")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	session, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionView(session), "Login successful.")
}

// Logout blacklists the presented session token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := deliverycontext.GetAuthToken(c)

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out.")
}

// ForgotPassword mails a password reset token.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset email sent.")
}

// ResetPassword replaces the password of the reset token's holder. The
// token travels as the bearer token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	token := deliverycontext.GetAuthToken(c)
	if err := h.uc.ResetPassword(c.Request().Context(), token, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated. Please login again.")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
