package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the error classes this service produces. Errors are
// classified by marking them with one of these via the builder's Mark.
var (
	ErrNotFound        = new(ErrCodeNotFound, "resource not found")
	ErrValidation      = new(ErrCodeValidation, "validation error")
	ErrUnauthenticated = new(ErrCodeUnauthenticated, "unauthenticated")
	ErrDatabase        = new(ErrCodeDatabase, "database error")
	ErrSystem          = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:        http.StatusNotFound,
		ErrValidation:      http.StatusBadRequest,
		ErrUnauthenticated: http.StatusUnauthorized,
		ErrDatabase:        http.StatusInternalServerError,
		ErrSystem:          http.StatusInternalServerError,
	}
)

const (
	ErrCodeSystemError     = "system_error"
	ErrCodeNotFound        = "not_found"
	ErrCodeValidation      = "validation_error"
	ErrCodeUnauthenticated = "unauthenticated"
	ErrCodeDatabase        = "database_error"
)

// InternalError is the sentinel type: a machine-readable code plus a default
// message, matched by code so marked errors compare across wrapping.
type InternalError struct {
	Code    string
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthenticated checks if an error is an unauthenticated error
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsDatabase checks if an error is a database error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// HTTPStatusFromErr resolves the response status for a marked error,
// defaulting to 500 for anything unclassified.
func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
