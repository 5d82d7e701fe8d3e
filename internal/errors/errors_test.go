package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingField_NamesSectionAndKey(t *testing.T) {
	err := MissingField("method", "signature")

	require.True(t, IsMissingField(err))
	require.Equal(t, "signature", MissingKey(err))
	require.Contains(t, err.Error(), "method")
	require.Contains(t, err.Error(), `"signature"`)
}

func TestIsMissingField_WrappedError_StillDetected(t *testing.T) {
	err := fmt.Errorf("building class: %w", MissingField("class", "path"))

	require.True(t, IsMissingField(err))
	require.Equal(t, "path", MissingKey(err))
}

func TestIsMissingField_OtherError_False(t *testing.T) {
	require.False(t, IsMissingField(fmt.Errorf("boom")))
	require.False(t, IsMissingField(ConfigError("bad config")))
	require.Empty(t, MissingKey(fmt.Errorf("boom")))
}

func TestUnsupportedFormat_CarriesValue(t *testing.T) {
	err := UnsupportedFormat("asciidoc")

	require.True(t, IsCategory(err, CategoryFormat))
	require.Contains(t, err.Error(), "asciidoc")
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(cause, CategoryFileSystem, SeverityError, "reading input")

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "reading input")
}

func TestGetCategory_NonDocsError_Internal(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("boom")))
}
