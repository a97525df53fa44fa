package errors

import (
	"errors"
	"log"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when a registration collides with an existing email.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrDuplicateSubject is returned when an email is already bound to a different google account.
	ErrDuplicateSubject = errors.New("email is linked to a different google account")
	// ErrProviderMismatch is returned on a password login against a google-only account.
	ErrProviderMismatch = errors.New("this email is registered with google, please sign in with google")
	// ErrBadPassword is returned when the presented password does not match the stored hash.
	ErrBadPassword = errors.New("invalid password")
	// ErrUserNotFound is returned when no user exists for the presented email.
	ErrUserNotFound = errors.New("user not found with this email")
	// ErrVerification is returned for any google token validation failure. The
	// message is fixed; the underlying verifier error is logged server-side only.
	ErrVerification = errors.New("invalid google token")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy collapses to an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrDuplicateSubject):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_SUBJECT")
	case errors.Is(err, ErrProviderMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PROVIDER_MISMATCH")
	case errors.Is(err, ErrBadPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BAD_PASSWORD")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrVerification):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "VERIFICATION_FAILED")
	default:
		// the caller only ever sees the opaque message; keep the detail server-side
		log.Printf("unexpected error: %v", err)
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
