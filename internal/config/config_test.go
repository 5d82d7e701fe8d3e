package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gddocs.yaml")
	content := "format: hugo\nauthor: razvan\noutput:\n  directory: ./docs\n  clean: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "hugo", cfg.Format)
	require.Equal(t, "razvan", cfg.Author)
	require.Equal(t, "./docs", cfg.Output.Directory)
	require.True(t, cfg.Output.Clean)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("GDDOCS_TEST_AUTHOR", "from-env")
	path := filepath.Join(t.TempDir(), "gddocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("author: ${GDDOCS_TEST_AUTHOR}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Author)
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadOrDefault_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestInit_ExistingFileWithoutForce_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gddocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: hugo\n"), 0o644))

	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "markdown", cfg.Format)
}
