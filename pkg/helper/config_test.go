package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir replaces testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestGetCfgPath_Absolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "apiserver.yaml")
	assert.Equal(t, abs, GetCfgPath(abs))
}

func TestGetCfgPath_CurrentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apiserver.yaml"), []byte("server:\n"), 0644))
	chdir(t, dir)

	got := GetCfgPath("apiserver.yaml")
	assert.Equal(t, filepath.Join(dir, "apiserver.yaml"), got)
}

func TestGetCfgPath_ConfigsSubdir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "apiserver.yaml"), []byte("server:\n"), 0644))
	chdir(t, dir)

	got := GetCfgPath("apiserver.yaml")
	assert.Equal(t, filepath.Join(dir, "configs", "apiserver.yaml"), got)
}

func TestGetCfgPath_Fallback(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Equal(t, "/etc/gbs-inventario/missing.yaml", GetCfgPath("missing.yaml"))
}

func TestGetCfgPath_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { GetCfgPath("") })
}
