// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the hioload-ring
// library.
//
// Buffer-full and buffer-empty are not errors anywhere in this library;
// they are reported through boolean results. Errors exist only for
// construction-time misuse and unsupported platform operations.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library. Structured errors unwrap to
// these, so errors.Is works regardless of which shape a call site built.
var (
	// ErrInvalidCapacity is returned by constructors when the requested
	// capacity cannot hold at least one element. For slot rings this means
	// capacity < 2: one slot is sacrificed to distinguish full from empty.
	ErrInvalidCapacity = errors.New("ring: invalid capacity")

	// ErrNotTriviallyCopyable is returned by constructors when the element
	// type contains pointers, references, or other non-byte-copyable state.
	ErrNotTriviallyCopyable = errors.New("ring: element type is not trivially copyable")

	// ErrNotSupported reports an operation unavailable on this platform.
	ErrNotSupported = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeBadElementType
	ErrCodeNotSupported
)

// sentinel maps an ErrorCode to the sentinel it stands for.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeBadElementType:
		return ErrNotTriviallyCopyable
	case ErrCodeNotSupported:
		return ErrNotSupported
	}
	return nil
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap lets errors.Is match the sentinel the code stands for.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
