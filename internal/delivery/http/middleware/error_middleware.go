package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/delivery/http/response"
	domainerrors "petmanager/internal/domain/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Business errors
// keep their status, type and field map; anything unclassified is logged
// server side and answered with an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Fail(c, appErr.HTTPCode(), appErr.ErrorType(), appErr.Message(), appErr.Fields())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Fail(c, httpErr.Code, domainerrors.TypeGeneric, message, nil)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("requestID", deliverycontext.GetRequestIDFromContext(c.Request().Context())),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternal
	_ = response.Fail(c, internal.HTTPCode(), internal.ErrorType(), internal.Message(), nil)
}
