package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAt_ResolvesAbsolutePath verifies that a relative base directory is
// resolved to an absolute path exactly once, at construction.
func TestAt_ResolvesAbsolutePath(t *testing.T) {
	ws, err := At(".")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(ws.BaseDir))
}

// TestWorkspace_Paths verifies the fixed layout under the base directory.
func TestWorkspace_Paths(t *testing.T) {
	dir := t.TempDir()
	ws, err := At(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "zmk"), ws.RepoDir())
	assert.Equal(t, filepath.Join(dir, "build"), ws.BuildDir())
	assert.Equal(t, filepath.Join(dir, "config"), ws.ConfigDir())
}

// TestEnsureBuildDir_CreatesOnce verifies idempotent provisioning: the
// first call creates the directory, the second finds it and does nothing.
func TestEnsureBuildDir_CreatesOnce(t *testing.T) {
	ws, err := At(t.TempDir())
	require.NoError(t, err)

	created, err := ws.EnsureBuildDir()
	require.NoError(t, err)
	assert.True(t, created)

	info, err := os.Stat(ws.BuildDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	created, err = ws.EnsureBuildDir()
	require.NoError(t, err)
	assert.False(t, created)
}

// TestRepoExists verifies the existence check distinguishes a directory
// from an absent path and from a plain file.
func TestRepoExists(t *testing.T) {
	ws, err := At(t.TempDir())
	require.NoError(t, err)

	assert.False(t, ws.RepoExists())

	require.NoError(t, os.Mkdir(ws.RepoDir(), 0o755))
	assert.True(t, ws.RepoExists())
}

// TestConfigExists verifies the config directory check, including the
// file-not-directory case that would make the bind mount meaningless.
func TestConfigExists(t *testing.T) {
	ws, err := At(t.TempDir())
	require.NoError(t, err)

	assert.False(t, ws.ConfigExists())

	require.NoError(t, os.WriteFile(ws.ConfigDir(), []byte("not a dir"), 0o644))
	assert.False(t, ws.ConfigExists())

	require.NoError(t, os.Remove(ws.ConfigDir()))
	require.NoError(t, os.Mkdir(ws.ConfigDir(), 0o755))
	assert.True(t, ws.ConfigExists())
}
