// Package errors provides structured error handling for the courgette CLI.
//
// Lower layers return plain wrapped errors and sentinels. Commands convert them
// to a CLIError at the boundary, which carries a category (mapped to the exit
// code) and remediation steps shown to the user.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by a missing or invalid options file,
	// property override, or companion file.
	Configuration
	// Runtime errors occur during command execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	Category ErrorCategory
	Message  string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Cause is the wrapped lower-level error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns Cause so errors.Is sees the sentinel behind a CLIError.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

func newError(category ErrorCategory, message string, remediation []string) *CLIError {
	return &CLIError{Category: category, Message: message, Remediation: remediation}
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return newError(Argument, message, remediation)
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	err := newError(Argument, message, remediation)
	err.Usage = usage
	return err
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return newError(Configuration, message, remediation)
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return newError(Runtime, message, remediation)
}

// Wrap wraps err with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	cliErr := newError(category, err.Error(), remediation)
	cliErr.Cause = err
	return cliErr
}

// WrapWithMessage wraps err with a "message: err" CLIError.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	cliErr := newError(category, fmt.Sprintf("%s: %v", message, err), remediation)
	cliErr.Cause = err
	return cliErr
}

// AsCLIError returns the first CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
