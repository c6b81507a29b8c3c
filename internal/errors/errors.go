package errors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"carzone/internal/query"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailInUse is returned when registering an email that already exists.
	ErrEmailInUse = errors.New("email is already in use")
	// ErrInvalidRole is returned when registration carries an unknown role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrPasswordTooLong is returned when a password exceeds the hash input limit.
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
)

// NotFoundError reports a missing domain entity by name.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NotFound builds a NotFoundError for the given entity name.
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// reported as an internal error without detail.
func MapErrorToHTTP(err error) *HTTPError {
	var notFound *NotFoundError
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_IN_USE")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrPasswordTooLong):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_LONG")
	case errors.Is(err, query.ErrInvalidFilter):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILTER")
	case errors.As(err, &notFound):
		return NewHTTPError(http.StatusNotFound, notFound.Error(), "NOT_FOUND")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, "record not found", "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
