// Package errors provides a lightweight structured error type (DocsError)
// for category-based classification in the model builder and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a docs maker error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryFormat     ErrorCategory = "format"

	// Surrounding I/O errors (CLI layer only, never raised by the core)
	CategoryFileSystem ErrorCategory = "filesystem"

	// Everything else
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DocsError is a structured error with category and context
type DocsError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocsError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocsError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocsError) WithContext(key string, value any) *DocsError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocsError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocsError {
	return &DocsError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocsError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocsError {
	return &DocsError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if de, ok := err.(*DocsError); ok {
		return de.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocsError
func GetCategory(err error) ErrorCategory {
	if de, ok := err.(*DocsError); ok {
		return de.Category
	}
	return CategoryInternal
}
