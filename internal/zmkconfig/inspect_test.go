package zmkconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInspect_MissingDir verifies that an absent config directory is
// reported through the Report, not as an error.
func TestInspect_MissingDir(t *testing.T) {
	report, err := Inspect(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)
	assert.False(t, report.DirExists)
	assert.False(t, report.ManifestFound)
}

// TestInspect_DirWithoutManifest verifies a config directory without a
// west.yml: present but no manifest information.
func TestInspect_DirWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "totem.keymap"), []byte("/ {};"), 0o644))

	report, err := Inspect(dir)
	require.NoError(t, err)
	assert.True(t, report.DirExists)
	assert.False(t, report.ManifestFound)
}

// TestInspect_ParsesManifest verifies project extraction from a typical
// ZMK user config manifest.
func TestInspect_ParsesManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `manifest:
  remotes:
    - name: zmkfirmware
      url-base: https://github.com/zmkfirmware
  projects:
    - name: zmk
      remote: zmkfirmware
      revision: main
      import: app/west.yml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0o644))

	report, err := Inspect(dir)
	require.NoError(t, err)
	assert.True(t, report.DirExists)
	assert.True(t, report.ManifestFound)
	require.Len(t, report.Projects, 1)
	assert.Equal(t, "zmk", report.Projects[0].Name)
	assert.Equal(t, "main", report.Projects[0].Revision)
	assert.Equal(t, "zmkfirmware", report.Projects[0].Remote)
}

// TestInspect_MalformedManifest verifies that a west.yml that exists but
// cannot be parsed is surfaced as an error, since a user almost certainly
// wants to know their manifest is broken before entering the container.
func TestInspect_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("manifest: [oops"), 0o644))

	report, err := Inspect(dir)
	require.Error(t, err)
	assert.True(t, report.DirExists)
	assert.False(t, report.ManifestFound)
}
