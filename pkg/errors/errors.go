// Package errors provides structured error types for gitgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI pipeline
//   - Machine-readable error codes that map onto process exit codes
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotRepository, "'%s' is not a git repository", path)
//	if errors.Is(err, errors.ErrCodeNotRepository) {
//	    // Handle it
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutput, origErr, "failed to render %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories. The orchestrator maps these
// onto process exit codes.
const (
	// Input errors
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeNotRepository Code = "NOT_A_REPOSITORY"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Environment errors
	ErrCodeGitNotFound      Code = "GIT_NOT_FOUND"
	ErrCodeGraphvizNotFound Code = "GRAPHVIZ_NOT_FOUND"

	// Guard errors
	ErrCodeRepoTooLarge Code = "REPO_TOO_LARGE"

	// Acquisition errors
	ErrCodeGitCommand Code = "GIT_COMMAND_FAILED"

	// Output and render errors
	ErrCodeOutput Code = "OUTPUT_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message without the code prefix, with the
// cause appended when present. For other errors, returns the error string.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
