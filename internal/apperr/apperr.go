package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP boundary can map it to a status code
// without inspecting message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidID
	KindUnauthorized
	KindInvalidCredentials
	KindAlreadyExists
	KindConflict
	KindNotFound
)

// Error is the tagged error carried from repositories and services up to the
// controllers.
type Error struct {
	Kind    Kind
	Message string
	err     error // wrapped cause, for logs only
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the cause attached for server-side logging while clients only
// ever see Message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func InvalidID(message string) *Error { return New(KindInvalidID, message) }

func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

func InvalidCredentials() *Error { return New(KindInvalidCredentials, "Invalid login credentials") }

func AlreadyExists(message string) *Error { return New(KindAlreadyExists, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the kind of err if it is an *Error, KindInternal otherwise.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindInternal
}

// AsError unwraps err looking for an *Error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
