// Package errors holds the failure taxonomy shared by storage, services and handlers.
// Every failure returned by the core is an *Error carrying one Kind; the HTTP layer
// maps kinds to status codes.
package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	NotFound         Kind = "not_found"
	Forbidden        Kind = "forbidden"
	ValidationFailed Kind = "validation_failed"
	Conflict         Kind = "conflict"
	StorageError     Kind = "storage_error"
	Unauthenticated  Kind = "unauthenticated"
)

type Error struct {
	Kind    Kind
	Message string
	// field name -> problem, only for ValidationFailed
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and message to a lower level error.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Storage wraps a driver error. Errors that already carry a kind pass through untouched.
func Storage(err error, message string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Wrap(StorageError, err, message)
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: ValidationFailed, Message: message, Fields: fields}
}

// KindOf returns the kind of the first *Error in err's chain.
// Errors outside the taxonomy are reported as StorageError.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StorageError
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool {
	return Is(err, NotFound)
}

func IsForbidden(err error) bool {
	return Is(err, Forbidden)
}

func IsConflict(err error) bool {
	return Is(err, Conflict)
}
