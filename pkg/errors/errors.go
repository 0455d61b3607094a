// Package errors provides structured error types for cmplogview.
//
// This package defines error codes and types that enable:
//   - Consistent exit behavior in the CLI (usage vs. everything else)
//   - Machine-readable error codes for tests and scripting
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes are grouped by the stage that fails:
//   - USAGE: the command line is missing its input path
//   - FILE_ACCESS, PARSE: the input cannot be read or is not JSON
//   - SCHEMA, *_VALUE: the JSON does not have the CmpLog document shape
//   - INVALID_*: bad configuration or arguments
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSchema, "cmps[0]: missing %q", "log")
//	if errors.Is(err, errors.ErrCodeSchema) {
//	    // Handle malformed document
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileAccess, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Command line errors
	ErrCodeUsage Code = "USAGE"

	// Input errors
	ErrCodeFileAccess Code = "FILE_ACCESS"
	ErrCodeParse      Code = "PARSE"

	// Document shape errors
	ErrCodeSchema        Code = "SCHEMA"
	ErrCodeNegativeValue Code = "NEGATIVE_VALUE"
	ErrCodeInvalidValue  Code = "INVALID_VALUE"
	ErrCodeValueOverflow Code = "VALUE_OVERFLOW"

	// Validation errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Internal errors
	ErrCodeOutput   Code = "OUTPUT_ERROR"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Usage builds the USAGE error for a command invoked without its input path.
// The message is the exact line printed to the user.
func Usage(program string, args ...string) *Error {
	line := "usage: " + program
	for _, a := range args {
		line += " " + a
	}
	return &Error{Code: ErrCodeUsage, Message: line}
}

// As is errors.As from the standard library, re-exported so callers that
// import this package under the name errors keep access to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}
