// Package logfields pins canonical log field names to avoid drift across
// packages.
package logfields

import "log/slog"

const (
	KeyClass    = "class"
	KeyDocument = "document"
	KeyFormat   = "format"
	KeyInput    = "input"
	KeyOutput   = "output"
	KeyPath     = "path"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Class(name string) slog.Attr    { return slog.String(KeyClass, name) }
func Document(name string) slog.Attr { return slog.String(KeyDocument, name) }
func Format(f string) slog.Attr      { return slog.String(KeyFormat, f) }
func Input(path string) slog.Attr    { return slog.String(KeyInput, path) }
func Output(path string) slog.Attr   { return slog.String(KeyOutput, path) }
func Path(path string) slog.Attr     { return slog.String(KeyPath, path) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
