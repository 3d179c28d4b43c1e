package fetcherr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration indicates invalid client configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrEngineInit indicates the transfer engine could not be constructed.
	ErrEngineInit = errors.New("engine init error")
)

// Error is the library's error type. Ordinary network and HTTP outcomes
// are never reported through it; only fatal configuration and engine
// initialization failures are.
type Error struct {
	kind    error
	message string
	cause   error
	op      string
}

// Error returns the error message.
func (e *Error) Error() string {
	var parts []string

	if e.op != "" {
		parts = append(parts, fmt.Sprintf("op: %s", e.op))
	}
	if e.kind != nil {
		parts = append(parts, fmt.Sprintf("kind: %s", e.kind))
	}
	if e.message != "" {
		parts = append(parts, fmt.Sprintf("msg: %s", e.message))
	}
	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %s", e.cause))
	}

	return strings.Join(parts, " | ")
}

// Is reports whether any error in the chain matches target.
func (e *Error) Is(target error) bool {
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.cause != nil && errors.Is(e.cause, target) {
		return true
	}
	return false
}

// As finds the first error in the chain that matches target.
func (e *Error) As(target any) bool {
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.cause != nil && errors.As(e.cause, target) {
		return true
	}
	return false
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the kind of the error.
func (e *Error) Kind() error {
	return e.kind
}

// Message returns the message of the error.
func (e *Error) Message() string {
	return e.message
}

// Op returns the operation that produced the error.
func (e *Error) Op() string {
	return e.op
}

// New creates an empty Error.
func New() *Error {
	return &Error{}
}

// WithKind sets the kind of the error.
func (e *Error) WithKind(kind error) *Error {
	e.kind = kind
	return e
}

// WithMessage sets the message of the error.
func (e *Error) WithMessage(msg string) *Error {
	e.message = msg
	return e
}

// WithCause sets the cause of the error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// WithOp sets the operation of the error.
func (e *Error) WithOp(op string) *Error {
	e.op = op
	return e
}
