// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "petmanager/internal/delivery/context"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/usecase"
)

// AuthMiddleware guards protected routes with the session token check chain.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token through the full chain (blacklist,
// signature, expiry, user existence, password change, verified) and stores
// the authenticated user plus the raw token in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		user, err := m.authUsecase.ValidateSession(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAuthUser(c, user)
		deliverycontext.SetAuthToken(c, token)

		return next(c)
	}
}

// ExtractToken pulls the bearer token into the request context without
// validating it as a session. Used by routes whose token is an emailed
// verification or reset token, or a session token about to be blacklisted.
func (m *AuthMiddleware) ExtractToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		deliverycontext.SetAuthToken(c, token)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrNoToken
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrNoToken
	}

	return token, nil
}
