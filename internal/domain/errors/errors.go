// Package errors defines the business errors surfaced to API clients. Each
// error carries the HTTP status and error type the delivery layer needs to
// shape a response, so handlers never pick status codes themselves.
package errors

import "net/http"

// Error type labels included in the response envelope.
const (
	TypeGeneric    = "generic"
	TypeValidation = "validation"
	TypeUniqueness = "uniqueness"
)

// AppError is implemented by every error that maps to a deliberate API
// response. Anything else is treated as an internal failure.
type AppError interface {
	error
	HTTPCode() int
	ErrorType() string
	Message() string
	Fields() map[string]string
}

// BaseError is a plain business error with a fixed status and message.
type BaseError struct {
	Code int
	Type string
	Msg  string
}

func (e *BaseError) Error() string             { return e.Msg }
func (e *BaseError) HTTPCode() int             { return e.Code }
func (e *BaseError) ErrorType() string         { return e.Type }
func (e *BaseError) Message() string           { return e.Msg }
func (e *BaseError) Fields() map[string]string { return nil }

// ValidationError carries a per-field message map alongside the summary
// message, for payload validation and uniqueness conflicts.
type ValidationError struct {
	BaseError
	FieldErrors map[string]string
}

func (e *ValidationError) Fields() map[string]string { return e.FieldErrors }

// NewValidation builds a 400 validation error from a field message map.
func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError:   BaseError{Code: http.StatusBadRequest, Type: TypeValidation, Msg: "Invalid request payload."},
		FieldErrors: fields,
	}
}

// NewUniqueness builds a 400 uniqueness conflict from a field message map,
// e.g. {"username": "This username is already taken."}.
func NewUniqueness(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError:   BaseError{Code: http.StatusBadRequest, Type: TypeUniqueness, Msg: "Uniqueness constraint violated."},
		FieldErrors: fields,
	}
}

func generic(code int, msg string) *BaseError {
	return &BaseError{Code: code, Type: TypeGeneric, Msg: msg}
}

// Auth and token lifecycle.
var (
	ErrInvalidCredentials = generic(http.StatusUnauthorized, "No user was found based on the provided credentials.")
	ErrNotVerified        = generic(http.StatusUnauthorized, "You need to verify your account before you gain access.")
	ErrAlreadyVerified    = generic(http.StatusBadRequest, "This account has already been verified.")
	ErrTokenBlacklisted   = generic(http.StatusUnauthorized, "Token is no longer available.")
	ErrTokenInvalid       = generic(http.StatusUnauthorized, "Token is invalid.")
	ErrTokenExpired       = generic(http.StatusUnauthorized, "Token is expired.")
	ErrPasswordChanged    = generic(http.StatusUnauthorized, "You have changed your password. Please login again to gain access.")
	ErrNoToken            = generic(http.StatusUnauthorized, "You are not logged in. Please login to gain access.")
	ErrUserGone           = generic(http.StatusUnauthorized, "The user belonging to this session no longer exists.")
	ErrUserNotFound       = generic(http.StatusNotFound, "No user was found.")
	ErrPasswordTooShort   = generic(http.StatusBadRequest, "Password must be at least 8 characters long.")
)

// Pets, days, meals and appointments.
var (
	ErrPetNotFound        = generic(http.StatusNotFound, "No pet was found.")
	ErrPetLimitReached    = generic(http.StatusBadRequest, "You have reached the maximum number of pets.")
	ErrDayExists          = generic(http.StatusConflict, "This day has been already registered for this current pet.")
	ErrDayNotFound        = generic(http.StatusNotFound, "No day was found.")
	ErrMealNotFound       = generic(http.StatusNotFound, "No meal was found.")
	ErrAppointmentTaken   = generic(http.StatusConflict, "This time slot overlaps with another appointment.")
	ErrAppointmentMissing = generic(http.StatusNotFound, "No appointment was found.")
	ErrFoodNotFound       = generic(http.StatusNotFound, "No food was found.")
)

// ErrInternal is the opaque fallback for unclassified failures. The real
// cause is logged server side only.
var ErrInternal = generic(http.StatusInternalServerError, "Something went wrong. Please try again later!")
