// Package errors defines the CLI error taxonomy: input errors (missing
// files, malformed JSON, top-level type mismatches) abort the operation
// that hit them; validation findings are never errors and flow through
// result types instead.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two distinct input failure kinds at the file
// boundary.
var (
	ErrFileNotFound  = errors.New("file not found")
	ErrMalformedJSON = errors.New("malformed JSON")
)

// Category classifies a CLI error for exit-code mapping.
type Category int

const (
	// Argument marks invalid command-line arguments.
	Argument Category = iota
	// Input marks unreadable or missing input files.
	Input
	// Parse marks syntactically invalid input content.
	Parse
	// Runtime marks unexpected internal failures.
	Runtime
)

// String returns the display name for the category.
func (c Category) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Input:
		return "Input Error"
	case Parse:
		return "Parse Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a categorized error with optional remediation steps shown to
// the user.
type CLIError struct {
	Category    Category
	Message     string
	Remediation []string
	Err         error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Format returns the full user-facing rendering: category header, message,
// and remediation bullets.
func (e *CLIError) Format() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n", e.Category, e.Message))
	for _, step := range e.Remediation {
		sb.WriteString(fmt.Sprintf("  - %s\n", step))
	}
	return sb.String()
}

// NewArgumentError creates an Argument-category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewInputError creates an Input-category error wrapping its cause.
func NewInputError(cause error, message string, remediation ...string) *CLIError {
	return &CLIError{Category: Input, Message: message, Remediation: remediation, Err: cause}
}

// NewParseError creates a Parse-category error wrapping its cause.
func NewParseError(cause error, message string, remediation ...string) *CLIError {
	return &CLIError{Category: Parse, Message: message, Remediation: remediation, Err: cause}
}

// NewRuntimeError creates a Runtime-category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}
