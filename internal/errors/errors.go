package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or PIN is incorrect,
	// or the account is inactive. The cases are deliberately
	// indistinguishable to resist credential enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrHallRequired is returned when a non-admin role has no hall assigned.
	ErrHallRequired = errors.New("hall number required for this role")
	// ErrInvalidHall is returned when a hall number is outside 1..3.
	ErrInvalidHall = errors.New("hall number must be between 1 and 3")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrHallForbidden is returned when a user acts on a hall outside their scope.
	ErrHallForbidden = errors.New("hall not within user scope")
	// ErrInvalidRole is returned when a role is not admin, supervisor or agent.
	ErrInvalidRole = errors.New("invalid role")
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
// treated as a store/transport failure.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrDuplicateUsername):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USERNAME")
	case errors.Is(err, ErrHallRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "HALL_REQUIRED")
	case errors.Is(err, ErrInvalidHall):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_HALL")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrHallForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "HALL_FORBIDDEN")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "STORE_UNAVAILABLE")
	}
}
