package convert

import (
	"git.home.luguber.info/inful/gddocs/internal/errors"
)

// Format selects the output dialect. Exactly two dialects exist; anything
// else is a configuration error, never a silent default.
type Format string

const (
	// FormatMarkdown is plain markdown: explicit top-level heading, fenced
	// code blocks, no front matter.
	FormatMarkdown Format = "markdown"
	// FormatHugo prepends YAML front matter and uses highlight shortcodes;
	// the title lives in the front matter instead of a heading.
	FormatHugo Format = "hugo"
)

// ParseFormat validates a raw format value.
func ParseFormat(raw string) (Format, error) {
	f := Format(raw)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate rejects unknown format values.
func (f Format) Validate() error {
	switch f {
	case FormatMarkdown, FormatHugo:
		return nil
	}
	return errors.UnsupportedFormat(string(f))
}
