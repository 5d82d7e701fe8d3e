package errors

import (
	"errors"
	"fmt"
)

// MissingField reports that a raw record lacks a key the model builder
// requires. The record section ("class", "method", "member", ...) and the
// absent key are carried as structured context.
func MissingField(section, key string) *DocsError {
	e := New(CategoryValidation, SeverityFatal, fmt.Sprintf("%s record is missing required key %q", section, key))
	return e.WithContext("section", section).WithContext("key", key)
}

// IsMissingField reports whether err (or anything it wraps) is a MissingField error.
func IsMissingField(err error) bool {
	var de *DocsError
	if errors.As(err, &de) {
		_, ok := de.Context["key"]
		return de.Category == CategoryValidation && ok
	}
	return false
}

// MissingKey returns the absent key named by a MissingField error, or "".
func MissingKey(err error) string {
	var de *DocsError
	if errors.As(err, &de) {
		if key, ok := de.Context["key"].(string); ok {
			return key
		}
	}
	return ""
}

// UnsupportedFormat reports an unrecognized output format value. Formats are
// a closed set; anything unknown is a configuration error, never a silent default.
func UnsupportedFormat(value string) *DocsError {
	e := New(CategoryFormat, SeverityFatal, fmt.Sprintf("unsupported output format %q", value))
	return e.WithContext("format", value)
}

// ConfigError creates a new configuration error
func ConfigError(message string) *DocsError {
	return New(CategoryConfig, SeverityFatal, message)
}

// WrapError wraps an existing error with a new DocsError at error severity
func WrapError(err error, category ErrorCategory, message string) *DocsError {
	return Wrap(err, category, SeverityError, message)
}
