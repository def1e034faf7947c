// Package apperror defines the error kinds shared by services and handlers.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindDuplicateEmail  Kind = "DUPLICATE_EMAIL"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindInternal        Kind = "INTERNAL"
)

// Error is a classified error. Message is safe to show to clients; Cause is
// only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on kind so errors.Is(err, apperror.ErrNotFound) holds for any
// not-found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

var (
	ErrValidation      = &Error{Kind: KindValidation}
	ErrDuplicateEmail  = &Error{Kind: KindDuplicateEmail}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrInternal        = &Error{Kind: KindInternal}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Forbidden(message string) *Error { return New(KindForbidden, message) }

func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }

// Internal wraps a store or infrastructure failure.
func Internal(cause error) *Error {
	return Wrap(KindInternal, "Internal Server Error", cause)
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal Server Error"
}
