package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeading_ReturnsLineAndBlank(t *testing.T) {
	require.Equal(t, []string{"## Methods", ""}, Heading("Methods", 2))
}

func TestSection_Empty_ProducesNoLines(t *testing.T) {
	section := Section{Title: "Signals", Level: 2}
	require.True(t, section.IsEmpty())
	require.Nil(t, section.AsText())
}

func TestSection_WithContent_HeadingThenContent(t *testing.T) {
	section := Section{Title: "Description", Level: 2, Content: []string{"Does things."}}
	require.Equal(t, []string{"## Description", "", "Does things."}, section.AsText())
}

func TestTableHeader_TwoColumns(t *testing.T) {
	require.Equal(t,
		[]string{"| Type | Name |", "| --- | --- |"},
		TableHeader([]string{"Type", "Name"}))
}

func TestCodeBlock_FencedWithLanguage(t *testing.T) {
	require.Equal(t, "```gdscript\nbar() -> void\n```", CodeBlock("bar() -> void", "gdscript"))
}

func TestWrapInNewlines_SurroundsWithBlanks(t *testing.T) {
	require.Equal(t, []string{"", "- a", "- b", ""}, WrapInNewlines([]string{"- a", "- b"}))
}

func TestComment_HTMLComment(t *testing.T) {
	require.Equal(t, "<!-- note -->", Comment("note"))
}

func TestSurroundWithHTML_WrapsTag(t *testing.T) {
	require.Equal(t, "<small>(abstract)</small>", SurroundWithHTML("(abstract)", "small"))
}

func TestDocumentString_JoinsLines(t *testing.T) {
	doc := Document{Name: "Foo", Lines: []string{"# Foo", "", "body"}}
	require.Equal(t, "# Foo\n\nbody", doc.String())
}
