package context

import (
	"github.com/labstack/echo/v4"

	"petmanager/internal/domain/entity"
)

const (
	// KeyAuthUser is the key for the authenticated user set by the auth middleware.
	KeyAuthUser ContextKey = "auth_user"

	// KeyAuthToken is the key for the raw bearer token of the current request.
	KeyAuthToken ContextKey = "auth_token"
)

// SetAuthUser stores the authenticated user in echo.Context.
func SetAuthUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyAuthUser), user)
}

// GetAuthUser extracts the authenticated user from echo.Context.
// Returns nil when the request is not authenticated.
func GetAuthUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyAuthUser)).(*entity.User); ok {
		return user
	}

	return nil
}

// SetAuthToken stores the raw bearer token in echo.Context.
func SetAuthToken(c echo.Context, token string) {
	c.Set(string(KeyAuthToken), token)
}

// GetAuthToken extracts the raw bearer token from echo.Context.
// Returns empty string when the request carried none.
func GetAuthToken(c echo.Context) string {
	if token, ok := c.Get(string(KeyAuthToken)).(string); ok {
		return token
	}

	return ""
}
