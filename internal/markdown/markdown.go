// Package markdown holds the line-oriented document model and the formatting
// primitives the renderer builds pages from. A document is an ordered list of
// text lines; nothing here touches the filesystem.
package markdown

import (
	"fmt"
	"strings"
)

// Document is one finished page: the class name it documents and its lines,
// in output order. Naming the file is the writer's concern.
type Document struct {
	Name  string
	Lines []string
}

// String joins the document lines for writing.
func (d Document) String() string {
	return strings.Join(d.Lines, "\n")
}

// Section is a titled block that disappears entirely when its content is
// empty.
type Section struct {
	Title   string
	Level   int
	Content []string
}

// IsEmpty reports whether the section has no content lines.
func (s Section) IsEmpty() bool {
	return len(s.Content) == 0
}

// AsText returns the section heading followed by its content, or nothing at
// all for an empty section.
func (s Section) AsText() []string {
	if s.IsEmpty() {
		return nil
	}
	return append(Heading(s.Title, s.Level), s.Content...)
}

// Heading returns an ATX heading line followed by a blank line.
func Heading(text string, level int) []string {
	return []string{strings.Repeat("#", level) + " " + text, ""}
}

// Bold wraps text in strong emphasis markers.
func Bold(text string) string {
	return "**" + text + "**"
}

// Comment returns an HTML comment line.
func Comment(text string) string {
	return fmt.Sprintf("<!-- %s -->", text)
}

// SurroundWithHTML wraps text in the given HTML tag.
func SurroundWithHTML(text, tag string) string {
	return fmt.Sprintf("<%s>%s</%s>", tag, text, tag)
}

// CodeBlock returns a fenced code block for the given language.
func CodeBlock(code, language string) string {
	return fmt.Sprintf("```%s\n%s\n```", language, code)
}

// TableRow renders one table row.
func TableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// TableHeader renders the header row plus its delimiter row.
func TableHeader(cells []string) []string {
	delimiters := make([]string, len(cells))
	for i := range delimiters {
		delimiters[i] = "---"
	}
	return []string{TableRow(cells), TableRow(delimiters)}
}

// WrapInNewlines surrounds the lines with one blank line on each side.
func WrapInNewlines(lines []string) []string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, "")
	out = append(out, lines...)
	return append(out, "")
}
