// Package convert walks the typed class model and produces one markdown
// document per class, honoring the selected output format.
package convert

import (
	"fmt"

	"git.home.luguber.info/inful/gddocs/internal/gdscript"
	"git.home.luguber.info/inful/gddocs/internal/hugo"
	"git.home.luguber.info/inful/gddocs/internal/markdown"
)

const generatedNotice = "Auto-generated from JSON by GDScript docs maker. Do not edit this document directly."

// Options parameterize rendering. FrontMatter is consumed only by the Hugo
// front-matter builder, never interpreted here.
type Options struct {
	Format      Format
	FrontMatter hugo.Options
}

// ToMarkdown renders every class in input order. The format is validated
// once, before any document is produced.
func ToMarkdown(classes gdscript.Classes, opts Options) ([]markdown.Document, error) {
	if err := opts.Format.Validate(); err != nil {
		return nil, err
	}
	docs := make([]markdown.Document, 0, classes.Len())
	for _, class := range classes.All() {
		docs = append(docs, AsMarkdown(class, opts))
	}
	return docs, nil
}

// AsMarkdown renders a single class. The section order is fixed: front
// matter (Hugo), generation notice, title (plain markdown), extends line,
// description, property and method overview tables, signals, enumerations,
// then the full property and method reference.
func AsMarkdown(class gdscript.Class, opts Options) markdown.Document {
	var content []string

	name := class.Name
	if class.HasTag(gdscript.TagAbstract) {
		name += " " + markdown.SurroundWithHTML("(abstract)", "small")
	}

	if opts.Format == FormatHugo {
		content = append(content, hugo.FromClass(class, opts.FrontMatter).AsLines()...)
	}

	content = append(content, markdown.Comment(generatedNotice)+"\n")

	if opts.Format == FormatMarkdown {
		content = append(content, markdown.Heading(name, 1)...)
	}
	content = append(content, markdown.Bold("Extends:")+" "+class.ExtendsAsString())
	content = append(content, markdown.Section{Title: "Description", Level: 2, Content: []string{class.Description}}.AsText()...)

	// Overview of the properties and methods.
	content = append(content, markdown.Section{Title: "Properties", Level: 2, Content: summarizeMembers(class)}.AsText()...)
	content = append(content, markdown.Section{Title: "Methods", Level: 2, Content: summarizeMethods(class)}.AsText()...)
	content = append(content, markdown.Section{Title: "Signals", Level: 2, Content: writeSignals(class.Signals)}.AsText()...)
	content = append(content, markdown.Section{Title: "Enumerations", Level: 2, Content: writeEnums(class.Enums, opts)}.AsText()...)

	// Full reference for the properties and methods.
	content = append(content, markdown.Section{Title: "Property Descriptions", Level: 2, Content: writeMembers(class.Members, opts)}.AsText()...)
	content = append(content, markdown.Section{Title: "Method Descriptions", Level: 2, Content: writeFunctions(class.Functions, opts)}.AsText()...)

	return markdown.Document{Name: class.Name, Lines: content}
}

// codeLine renders a signature in the dialect's code style.
func (o Options) codeLine(code string) string {
	if o.Format == FormatHugo {
		return hugo.HighlightCode(code)
	}
	return markdown.CodeBlock(code, "gdscript")
}

func summarizeMembers(class gdscript.Class) []string {
	if len(class.Members) == 0 {
		return nil
	}
	lines := markdown.TableHeader([]string{"Type", "Name"})
	for _, member := range class.Members {
		lines = append(lines, markdown.TableRow(member.Summarize()))
	}
	return lines
}

// summarizeMethods always emits the table, header included, even for a class
// with no documented methods.
func summarizeMethods(class gdscript.Class) []string {
	lines := markdown.TableHeader([]string{"Type", "Name"})
	for _, function := range class.Functions {
		lines = append(lines, markdown.TableRow(function.Summarize()))
	}
	return lines
}

func writeSignals(signals []gdscript.Signal) []string {
	if len(signals) == 0 {
		return nil
	}
	lines := make([]string, 0, len(signals))
	for _, signal := range signals {
		lines = append(lines, fmt.Sprintf("- %s", signal.Signature))
	}
	return markdown.WrapInNewlines(lines)
}

func writeEnums(enums []gdscript.Enumeration, opts Options) []string {
	var lines []string
	for _, enum := range enums {
		lines = append(lines, markdown.Heading(enum.Name, 3)...)
		lines = append(lines, opts.codeLine(enum.Signature), "")
		lines = append(lines, enum.Description)
	}
	return lines
}

func writeMembers(members []gdscript.Member, opts Options) []string {
	var lines []string
	for _, member := range members {
		lines = append(lines, markdown.Heading(member.Name, 3)...)
		lines = append(lines, opts.codeLine(member.Signature), "")
		// The guard checks only the setter, not setter-or-getter, so a
		// getter-only member gets no setter/getter table. Kept to preserve
		// the reference output.
		if member.Setter != "" {
			var setget []string
			if member.Setter != "" {
				setget = append(setget, markdown.TableRow([]string{"Setter", member.Setter}))
			}
			if member.Getter != "" {
				setget = append(setget, markdown.TableRow([]string{"Getter", member.Getter}))
			}
			setget = append(setget, "")
			lines = append(lines, setget...)
		}
		lines = append(lines, member.Description)
	}
	return lines
}

func writeFunctions(functions []gdscript.Function, opts Options) []string {
	var lines []string
	for _, function := range functions {
		heading := function.Name
		switch function.Kind {
		case gdscript.KindVirtual:
			heading += " " + markdown.SurroundWithHTML("(virtual)", "small")
		case gdscript.KindStatic:
			heading += " " + markdown.SurroundWithHTML("(static)", "small")
		}
		lines = append(lines, markdown.Heading(heading, 3)...)
		lines = append(lines, opts.codeLine(function.Signature), "")
		if function.Description != "" {
			lines = append(lines, "", function.Description)
		}
	}
	return lines
}
