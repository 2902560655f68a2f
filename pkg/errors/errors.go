// Package errors provides structured error types for gymdiag.
//
// Every error raised while loading, validating, rendering or writing a
// diagram carries a machine-readable [Code] so the CLI can report failures
// per diagram and tests can match on the category rather than the text.
//
// # Error Codes
//
//   - INVALID_*: a diagram table, format list, name or config is malformed
//   - UNKNOWN_DIAGRAM: a requested diagram name is not in the catalog
//   - RENDER_FAILED: a sink could not produce an artifact
//   - WRITE_FAILED: an artifact could not be written to disk
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDiagram, "duplicate box %q", label)
//	if errors.Is(err, errors.ErrCodeInvalidDiagram) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeWriteFailed, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidDiagram Code = "INVALID_DIAGRAM"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidName    Code = "INVALID_NAME"
	ErrCodeInvalidEngine  Code = "INVALID_ENGINE"

	// Lookup errors
	ErrCodeUnknownDiagram Code = "UNKNOWN_DIAGRAM"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeWriteFailed  Code = "WRITE_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Join collects several validation failures into one error. It returns nil
// when errs is empty and the single error unchanged when there is only one.
func Join(code Code, errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf("%d problems", len(errs)),
		Cause:   errors.Join(errs...),
	}
}
