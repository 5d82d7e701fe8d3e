package load

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const classList = `[{"name": "Foo", "extends_class": ["Node"], "description": "", "path": "foo.gd",
"methods": [], "static_functions": [], "members": [], "signals": [], "constants": []}]`

const referenceDump = `{"name": "My Game", "description": "A game.", "version": "1.0.0",
"classes": [{"name": "Foo"}]}`

func TestRead_BareArray_ReturnsRecords(t *testing.T) {
	dump, err := Read(strings.NewReader(classList))
	require.NoError(t, err)
	require.Len(t, dump.Records, 1)
	require.Equal(t, "Foo", dump.Records[0]["name"])
	require.Empty(t, dump.Project.Name)
}

func TestRead_DumpObject_ReturnsHeaderAndRecords(t *testing.T) {
	dump, err := Read(strings.NewReader(referenceDump))
	require.NoError(t, err)
	require.Equal(t, "My Game", dump.Project.Name)
	require.Equal(t, "1.0.0", dump.Project.Version)
	require.Len(t, dump.Records, 1)
}

func TestRead_InvalidJSON_Fails(t *testing.T) {
	_, err := Read(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestReadFiles_MultipleDumps_ConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, os.WriteFile(first, []byte(referenceDump), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`{"classes": [{"name": "Bar"}]}`), 0o644))

	dump, err := ReadFiles([]string{first, second})
	require.NoError(t, err)
	require.Len(t, dump.Records, 2)
	require.Equal(t, "Foo", dump.Records[0]["name"])
	require.Equal(t, "Bar", dump.Records[1]["name"])
	require.Equal(t, "My Game", dump.Project.Name)
}

func TestReadFile_MissingFile_Fails(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
