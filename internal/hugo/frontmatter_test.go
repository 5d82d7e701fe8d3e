package hugo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/gddocs/internal/gdscript"
)

func TestFromClass_AbstractTag_TitleCarriesSuffix(t *testing.T) {
	class := gdscript.Class{Name: "Foo", Tags: []string{"abstract"}}

	fm := FromClass(class, Options{Author: "razvan", Date: "2020-01-02"})

	require.Equal(t, "Foo (abstract)", fm.Title)
	require.Equal(t, "razvan", fm.Author)
	require.Equal(t, "2020-01-02", fm.Date)
}

func TestFromClass_MultilineDescription_FlattenedToOneLine(t *testing.T) {
	class := gdscript.Class{Name: "Foo", Description: "line one\nline two"}

	fm := FromClass(class, Options{})

	require.Equal(t, `line one\nline two`, fm.Description)
}

func TestAsLines_Delimited_FixedKeyOrder(t *testing.T) {
	fm := FrontMatter{Title: "Foo", Description: "Does things.", Author: "razvan", Date: "2020-01-02"}

	lines := fm.AsLines()

	require.Equal(t, "---", lines[0])
	require.Equal(t, "---", lines[len(lines)-2])
	require.Equal(t, "", lines[len(lines)-1])
	require.Contains(t, lines[1], "title:")
	require.Contains(t, lines[2], "description:")
	require.Contains(t, lines[3], "author:")
	require.Contains(t, lines[4], "date:")
}

func TestAsLines_Deterministic(t *testing.T) {
	fm := FrontMatter{Title: "Foo", Description: "d", Author: "a", Date: "2020-01-02"}
	require.Equal(t, fm.AsLines(), fm.AsLines())
}

func TestHighlightCode_WrapsInShortcode(t *testing.T) {
	require.Equal(t,
		"{{< highlight gdscript >}}bar() -> void{{< /highlight >}}",
		HighlightCode("bar() -> void"))
}

func TestShortcode_NoArguments_NameOnly(t *testing.T) {
	require.Equal(t, "{{< note >}}text{{< /note >}}", Shortcode("text", "note"))
}
