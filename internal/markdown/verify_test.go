package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify_CleanDocument_NoProblems(t *testing.T) {
	doc := Document{Name: "Foo", Lines: []string{
		"# Foo",
		"",
		"**Extends:** Node",
		"",
		"See [the manual](https://docs.example.com).",
	}}

	require.Empty(t, Verify(doc))
}

func TestVerify_EmptyLinkDestination_Reported(t *testing.T) {
	doc := Document{Name: "Foo", Lines: []string{"A [broken link]() here."}}

	problems := Verify(doc)
	require.Len(t, problems, 1)
	require.Equal(t, "Foo", problems[0].Document)
	require.Contains(t, problems[0].Detail, "empty destination")
}

func TestVerify_EmptyHeading_Reported(t *testing.T) {
	doc := Document{Name: "Foo", Lines: []string{"##  ", "", "body"}}

	problems := Verify(doc)
	require.Len(t, problems, 1)
	require.Contains(t, problems[0].Detail, "empty title")
}
