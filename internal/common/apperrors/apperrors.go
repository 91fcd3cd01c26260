// Package apperrors provides the application error type used across the
// tracker. It implements the standard error interface and adds chainable
// wrapping so sentinel errors can be refined with context while staying
// matchable through errors.Is.
package apperrors

import (
	"errors"
	"strings"
)

// Error is the application error interface. All methods return Error so
// refinements can be chained off a sentinel.
type Error interface {
	error
	Unwrap() error

	// New creates a child error with its own message, using the receiver
	// as template and errors.Is ancestor.
	New(msg string) Error
	// Msg creates a child error with a new message that also wraps the
	// receiver for expansion.
	Msg(msg string) Error
	// Err attaches additional causes to the receiver.
	Err(errs ...error) Error
	// ErrorAll returns the message followed by all wrapped causes.
	ErrorAll() string
	// UnwrapAll returns every wrapped cause.
	UnwrapAll() []error
}

type appError struct {
	msg     string
	base    error
	wrapped []error
}

// New creates a root-level application error with the given message.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) ErrorAll() string {
	var b strings.Builder
	b.WriteString(e.msg)
	for _, err := range e.wrapped {
		b.WriteString("; ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *appError) Unwrap() error {
	return e.base
}

func (e *appError) UnwrapAll() []error {
	return e.wrapped
}

func (e *appError) New(msg string) Error {
	return &appError{msg: msg, base: e}
}

func (e *appError) Msg(msg string) Error {
	return &appError{msg: msg, base: e, wrapped: []error{e}}
}

func (e *appError) Err(errs ...error) Error {
	all := append([]error{e}, errs...)
	return &appError{msg: e.msg, base: e, wrapped: all}
}

// Is matches the target against the base chain and every wrapped cause.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrapped {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
