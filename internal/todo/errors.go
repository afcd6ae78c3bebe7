package todo

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodeSchemaMismatch    Code = "SCHEMA_MISMATCH"
	CodeInvalidTransition Code = "INVALID_TRANSITION"
	CodeNoActiveRow       Code = "NO_ACTIVE_ROW"
	CodeNotAllComplete    Code = "NOT_ALL_COMPLETE"
)

// Error is a domain failure with a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is matches any *Error carrying the same code, so the sentinels below work
// with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrNotFound          = &Error{Code: CodeNotFound}
	ErrAlreadyExists     = &Error{Code: CodeAlreadyExists}
	ErrSchemaMismatch    = &Error{Code: CodeSchemaMismatch}
	ErrInvalidTransition = &Error{Code: CodeInvalidTransition}
	ErrNoActiveRow       = &Error{Code: CodeNoActiveRow}
	ErrNotAllComplete    = &Error{Code: CodeNotAllComplete}
)

// Errorf builds a domain error with a formatted message.
func Errorf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsDomain reports whether err (or anything it wraps) is a domain error.
func IsDomain(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
