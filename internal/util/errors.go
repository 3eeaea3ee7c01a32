package util

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// ErrorKind is the stable, machine-readable classification sent to clients.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindUnauthenticated    ErrorKind = "unauthenticated"
	KindForbidden          ErrorKind = "forbidden"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindPendingApproval    ErrorKind = "pending_approval"
	KindInvalidToken       ErrorKind = "invalid_or_expired_token"
	KindInternal           ErrorKind = "internal"
)

// AppError is a domain failure that maps directly onto an HTTP response.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches on kind so callers can write errors.Is(err, util.ErrConflict).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, status int, message string) *AppError {
	return &AppError{Kind: kind, Status: status, Message: message}
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation         = newError(KindValidation, http.StatusBadRequest, "validation failed")
	ErrForbidden          = newError(KindForbidden, http.StatusForbidden, "Forbidden")
	ErrNotFound           = newError(KindNotFound, http.StatusNotFound, "Resource not found")
	ErrConflict           = newError(KindConflict, http.StatusBadRequest, "Resource already exists")
	ErrInvalidCredentials = newError(KindInvalidCredentials, http.StatusBadRequest, "Invalid email or password")
	ErrPendingApproval    = newError(KindPendingApproval, http.StatusUnauthorized, "Teacher not approved by admin yet")
	ErrInvalidToken       = newError(KindInvalidToken, http.StatusBadRequest, "Invalid or expired token")
)

func Validation(message string) *AppError {
	return newError(KindValidation, http.StatusBadRequest, message)
}

func Unauthenticated(message string) *AppError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return newError(KindForbidden, http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return newError(KindNotFound, http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return newError(KindConflict, http.StatusBadRequest, message)
}

// NotFoundOr converts gorm.ErrRecordNotFound into a NotFound with the given message
// and leaves every other error untouched.
func NotFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(message)
	}
	return err
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
