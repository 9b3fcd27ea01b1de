package domain

import (
	"errors"
	"fmt"
)

// Authentication and session errors
var (
	// Login errors. Unknown email and wrong secret deliberately collapse to
	// the same error so a caller can never tell which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIdentityNotFound   = errors.New("identity not found")

	// Session errors
	ErrProfileUpdateFailed = errors.New("no active session")
	ErrRestoreCorrupted    = errors.New("persisted session record corrupted")

	// Password change errors
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrPasswordTooShort         = errors.New("new password must be at least 8 characters")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// RoleMismatchError is returned when the credentials are valid but the
// requested access role is not compatible with the account's actual role.
// It carries the actual role for display.
type RoleMismatchError struct {
	Actual Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("Access denied. This account has role: %s", e.Actual)
}

// NewRoleMismatchError creates a role mismatch error for the actual role
func NewRoleMismatchError(actual Role) *RoleMismatchError {
	return &RoleMismatchError{Actual: actual}
}

// AuthError represents authentication-related errors with additional context
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common auth error codes
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeRoleMismatch       = "ROLE_MISMATCH"
	ErrCodeNoSession          = "NO_SESSION"
	ErrCodePasswordIncorrect  = "PASSWORD_INCORRECT"
	ErrCodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// CodeForError maps a domain error to its external error code
func CodeForError(err error) string {
	var mismatch *RoleMismatchError
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return ErrCodeInvalidCredentials
	case errors.As(err, &mismatch):
		return ErrCodeRoleMismatch
	case errors.Is(err, ErrProfileUpdateFailed):
		return ErrCodeNoSession
	case errors.Is(err, ErrCurrentPasswordIncorrect):
		return ErrCodePasswordIncorrect
	case errors.Is(err, ErrPasswordTooShort):
		return ErrCodePasswordTooShort
	case errors.Is(err, ErrUnauthorized):
		return ErrCodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return ErrCodeForbidden
	default:
		return ErrCodeInternal
	}
}
