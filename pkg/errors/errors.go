package errors

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every error crossing the service boundary wraps exactly one
// of these so callers can branch without string matching.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidState     = errors.New("invalid state")
	ErrUpstreamFailure  = errors.New("upstream failure")
)

// Error is a tagged error value: a kind sentinel, a human-readable message and
// an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NotAuthenticated reports a call that arrived without an organization scope.
func NotAuthenticated() error {
	return &Error{Kind: ErrNotAuthenticated, Message: "not authenticated, an organization scope is required"}
}

// NotFoundf reports an absent group, item or integration.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidInputf reports a missing or malformed caller-supplied value.
func InvalidInputf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// InvalidStatef reports a mutation attempted on a non-editable group.
func InvalidStatef(format string, args ...any) error {
	return &Error{Kind: ErrInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a persistence or directory failure. The outcome of the
// operation is unknown to the caller; retrying the whole operation is safe
// because writes are atomic per group.
func Upstream(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrUpstreamFailure, Message: message, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetMessage returns the human-readable message for the boundary payload.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotAuthenticated returns true if the error is an authentication error.
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput returns true if the error is an invalid input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidState returns true if the error is an invalid state error.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsUpstreamFailure returns true if the error is an upstream failure.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamFailure)
}
