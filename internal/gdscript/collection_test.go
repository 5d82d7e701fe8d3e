package gdscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassesFromRawList_RecordWithoutName_SkippedSilently(t *testing.T) {
	classes, err := ClassesFromRawList([]Raw{
		{"not_a_class": true},
		rawClass(),
	})
	require.NoError(t, err)
	require.Equal(t, 1, classes.Len())
	require.Equal(t, "Foo", classes.All()[0].Name)
}

func TestClassesFromRawList_MalformedRecordWithName_AbortsBatch(t *testing.T) {
	broken := rawClass()
	delete(broken, "path")

	_, err := ClassesFromRawList([]Raw{rawClass(), broken})
	require.Error(t, err)
}

func TestGroupedByCategory_SortsAcrossAndPreservesOrderWithin(t *testing.T) {
	classes := NewClasses([]Class{
		{Name: "Zeta", Category: "b"},
		{Name: "Alpha", Category: "a"},
		{Name: "Beta", Category: "b"},
	})

	groups := classes.GroupedByCategory()
	require.Len(t, groups, 2)
	require.Equal(t, "a", groups[0][0].Category)
	require.Equal(t, []Class{{Name: "Zeta", Category: "b"}, {Name: "Beta", Category: "b"}}, groups[1])
}

func TestGroupedByCategory_Empty_ReturnsNil(t *testing.T) {
	require.Nil(t, NewClasses(nil).GroupedByCategory())
}
