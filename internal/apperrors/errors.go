package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindAuth             Kind = "UNAUTHORIZED"
	KindForbidden        Kind = "FORBIDDEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidOperation Kind = "INVALID_OPERATION"
	KindStorage          Kind = "STORAGE"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application-level error carried from services to handlers.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Auth(message string) *Error {
	return New(KindAuth, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func InvalidOperation(message string) *Error {
	return New(KindInvalidOperation, message)
}

// Storage wraps a failed store call. A nil err yields nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return Wrap(KindStorage, op, err)
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// FieldSet collects field errors across a validation pass.
type FieldSet []FieldError

func (s *FieldSet) Add(field, message string) {
	*s = append(*s, FieldError{Field: field, Message: message})
}

// Err returns a Validation error listing every collected field, or nil if none were added.
func (s FieldSet) Err() error {
	if len(s) == 0 {
		return nil
	}
	return Validation("Validation error", s...)
}
