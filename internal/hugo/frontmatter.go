// Package hugo formats rendered pages for the Hugo static site engine:
// YAML front matter blocks and highlight shortcodes.
package hugo

import (
	"bytes"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/gddocs/internal/gdscript"
)

// FrontMatter is the metadata block prepended to every page in the Hugo
// output format.
type FrontMatter struct {
	Title       string
	Description string
	Author      string
	Date        string
}

// Options are the front-matter inputs supplied by the caller rather than
// derived from the class.
type Options struct {
	Author string
	Date   string
}

// FromClass builds the front matter for one class. Abstract classes carry an
// "(abstract)" suffix in the title; the description is flattened to a single
// line.
func FromClass(class gdscript.Class, opts Options) FrontMatter {
	title := class.Name
	if class.HasTag(gdscript.TagAbstract) {
		title += " (abstract)"
	}
	return FrontMatter{
		Title:       title,
		Description: strings.ReplaceAll(class.Description, "\n", "\\n"),
		Author:      opts.Author,
		Date:        opts.Date,
	}
}

// AsLines serializes the front matter as a ----delimited YAML block with a
// fixed key order, followed by a blank separator line.
//
// Field order is pinned with an explicit mapping node; a plain map would
// leave ordering to the encoder.
func (fm FrontMatter) AsLines() []string {
	node := &yaml.Node{Kind: yaml.MappingNode}
	appendField := func(key, value string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}
	appendField("title", fm.Title)
	appendField("description", fm.Description)
	appendField("author", fm.Author)
	appendField("date", fm.Date)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		// Scalar-only mapping nodes cannot fail to encode; log and fall
		// through with whatever was written.
		slog.Error("front matter encoding failed", "error", err)
	}
	_ = enc.Close()

	lines := []string{"---"}
	lines = append(lines, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")...)
	return append(lines, "---", "")
}
