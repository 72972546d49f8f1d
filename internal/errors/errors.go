// Package errors provides sentinel and structured errors for donegen.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Exit codes returned by the donegen binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates user input was rejected.
	ExitValidationError = 2

	// ExitPermissionDenied indicates a file could not be written.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a required file or archetype was not found.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrExternalPath):
		return ExitValidationError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrComponentResolution):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Field is the answer key for input errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewInvalidNameError reports a package name that cannot be repaired.
func NewInvalidNameError(name, reason string) error {
	return &DetailError{
		Type:    "invalid name",
		Message: fmt.Sprintf("Your project name %s is not valid. Please try another name. Reason: %s", name, reason),
		Field:   "name",
		Hint:    "Use lowercase letters, digits and dashes, and avoid Node core module names.",
		Cause:   ErrInvalidName,
	}
}

// NewExternalPathError reports a project folder outside the project root.
func NewExternalPathError(folder string) error {
	return &DetailError{
		Type:    "invalid folder",
		Message: fmt.Sprintf("Your project main folder %s is external to the project folder. Please set to internal path.", folder),
		Field:   "folder",
		Cause:   ErrExternalPath,
	}
}

// NewComponentResolutionError reports a missing package.json for component placement.
func NewComponentResolutionError(location string) error {
	return &DetailError{
		Type:     "component resolution failed",
		Message:  "Expected to find a package.json in " + location,
		Location: location,
		Hint:     "Run the command from the root of a generated project, or create it first with 'donegen app'.",
		Cause:    ErrComponentResolution,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message, location string) error {
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Cause:    ErrPermission,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
