package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries an application error code, a user-facing message and the
// HTTP status the boundary should answer with.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
	Details []string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func BadRequest(message string, err error) *AppError {
	return New("BAD_REQUEST", message, http.StatusBadRequest, err)
}

// Validation carries every violated rule so the boundary can report them all
// in one response instead of failing on the first.
func Validation(messages []string) *AppError {
	e := New("VALIDATION_ERROR", "Validation failed", http.StatusBadRequest, nil)
	e.Details = messages
	return e
}

func Unauthorized(message string, err error) *AppError {
	return New("UNAUTHORIZED", message, http.StatusUnauthorized, err)
}

// TokenExpired is distinguishable from a generally invalid token so clients
// can trigger a re-login instead of treating the session as broken.
func TokenExpired(err error) *AppError {
	return New("TOKEN_EXPIRED", "Not authorized, token expired", http.StatusUnauthorized, err)
}

func Forbidden(message string, err error) *AppError {
	return New("FORBIDDEN", message, http.StatusForbidden, err)
}

func Conflict(message string, err error) *AppError {
	return New("CONFLICT", message, http.StatusConflict, err)
}

func Unavailable(message string) *AppError {
	return New("SERVICE_UNAVAILABLE", message, http.StatusServiceUnavailable, nil)
}

func Upstream(message string, err error) *AppError {
	return New("UPSTREAM_ERROR", message, http.StatusInternalServerError, err)
}

func Internal(message string, err error) *AppError {
	return New("INTERNAL_ERROR", message, http.StatusInternalServerError, err)
}

func TooManyRequests(message string) *AppError {
	return New("TOO_MANY_REQUESTS", message, http.StatusTooManyRequests, nil)
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
