package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateUsername is returned when the username is already registered.
	ErrDuplicateUsername = errors.New("username is already in use")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email is already in use")
	// ErrRoleNotFound is returned when a requested role is outside the catalog.
	ErrRoleNotFound = errors.New("role does not exist")
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when password verification fails.
	ErrInvalidPassword = errors.New("invalid password")
)

// ErrorResponse represents a standardized error response.
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
// treated as a store failure and surfaced as a generic server error.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrDuplicateUsername:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USERNAME")
	case ErrDuplicateEmail:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case ErrRoleNotFound:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidPassword:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
