// Copyright © 2018 One Concern

// Package errors provides sentinel errors which may carry a cause.
//
// Sentinels are declared once with New and decorated at the failure site with Wrap,
// so callers can test for the sentinel with Is while still reporting the underlying
// filesystem error.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New sentinel error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a sentinel error, optionally wrapping a cause.
type Error struct {
	msg    string
	err    error
	parent *Error
}

// Error message, followed by the cause when there is one
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a copy of the sentinel carrying err as its cause.
//
// The sentinel itself is left untouched, so it may be shared across goroutines and calls.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, parent: e.root()}
}

// Wrapf is like Wrap, with a formatted cause.
func (e *Error) Wrapf(format string, args ...interface{}) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is matches the sentinel this error was derived from, or its direct cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if ok && (e == t || e.root() == t.root()) {
		return true
	}
	return e.err == target
}

func (e *Error) root() *Error {
	if e.parent != nil {
		return e.parent
	}
	return e
}

// As finds the first error in err's chain that matches target
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
