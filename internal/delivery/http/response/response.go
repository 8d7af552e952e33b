// Package response defines the unified API response envelope.
package response

import (
	"github.com/labstack/echo/v4"
)

const (
	// StatusSuccess marks a successful response.
	StatusSuccess = "success"
	// StatusFail marks a failed response.
	StatusFail = "fail"
)

// Response unified API response structure
type Response struct {
	Status    string            `json:"status"` // "success" or "fail"
	Code      int               `json:"code"`   // HTTP status code
	Message   string            `json:"message,omitempty"`
	Data      any               `json:"data,omitempty"`
	ErrorType string            `json:"errorType,omitempty"` // "generic", "validation" or "uniqueness"
	Errors    map[string]string `json:"errorsObject,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Fail error response carrying an error type and optional per-field messages.
func Fail(c echo.Context, statusCode int, errorType, message string, fieldErrors map[string]string) error {
	return c.JSON(statusCode, Response{
		Status:    StatusFail,
		Code:      statusCode,
		Message:   message,
		ErrorType: errorType,
		Errors:    fieldErrors,
	})
}
