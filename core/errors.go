package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// AuthErrorCode is the closed set of failures the identity provider
// boundary can surface.
type AuthErrorCode string

const (
	AuthErrInvalidCredentials AuthErrorCode = "invalid_credentials"
	AuthErrAccountExists      AuthErrorCode = "account_exists"
	AuthErrNetwork            AuthErrorCode = "network_failure"
)

// AuthError wraps a provider failure; callers only ever show its
// message, nothing is retried.
type AuthError struct {
	Code AuthErrorCode
	Err  error
}

func NewAuthError(code AuthErrorCode, err error) error {
	return &AuthError{Code: code, Err: err}
}

func (err AuthError) Error() string {
	if err.Err == nil {
		return string(err.Code)
	}
	return err.Err.Error()
}

func (err AuthError) Unwrap() error { return err.Err }

// AuthErrorFrom unwraps err down to an AuthError if one caused it.
func AuthErrorFrom(err error) (*AuthError, bool) {
	authErr, ok := errors.Cause(err).(*AuthError)
	return authErr, ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
