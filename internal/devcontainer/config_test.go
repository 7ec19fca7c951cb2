package devcontainer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDevcontainer creates <repo>/.devcontainer/devcontainer.json with the
// given content and returns the repo directory.
func writeDevcontainer(t *testing.T, content string) string {
	t.Helper()
	repoDir := t.TempDir()
	dcDir := filepath.Join(repoDir, Dir)
	require.NoError(t, os.Mkdir(dcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dcDir, "devcontainer.json"), []byte(content), 0o644))
	return repoDir
}

// TestResolveBuild_Defaults verifies the well-known fallback when no
// devcontainer.json exists: .devcontainer/Dockerfile with .devcontainer
// as the build context.
func TestResolveBuild_Defaults(t *testing.T) {
	repoDir := t.TempDir()

	spec := ResolveBuild(repoDir)

	assert.Equal(t, filepath.Join(repoDir, ".devcontainer", "Dockerfile"), spec.Dockerfile)
	assert.Equal(t, filepath.Join(repoDir, ".devcontainer"), spec.ContextDir)
}

// TestResolveBuild_BuildSection verifies that build.dockerfile and
// build.context override the defaults, resolved relative to .devcontainer.
func TestResolveBuild_BuildSection(t *testing.T) {
	repoDir := writeDevcontainer(t, `{
		// ZMK dev container
		"name": "ZMK",
		"build": {
			"dockerfile": "Dockerfile.dev",
			"context": ".."
		}
	}`)

	spec := ResolveBuild(repoDir)

	assert.Equal(t, filepath.Join(repoDir, ".devcontainer", "Dockerfile.dev"), spec.Dockerfile)
	assert.Equal(t, repoDir, spec.ContextDir)
}

// TestResolveBuild_LegacyDockerFile verifies the legacy top-level
// "dockerFile" property is honored when no build section is present.
func TestResolveBuild_LegacyDockerFile(t *testing.T) {
	repoDir := writeDevcontainer(t, `{"name": "ZMK", "dockerFile": "Containerfile"}`)

	spec := ResolveBuild(repoDir)

	assert.Equal(t, filepath.Join(repoDir, ".devcontainer", "Containerfile"), spec.Dockerfile)
	assert.Equal(t, filepath.Join(repoDir, ".devcontainer"), spec.ContextDir)
}

// TestResolveBuild_JSONCComments verifies comment and trailing-comma
// tolerance, both common in real devcontainer.json files.
func TestResolveBuild_JSONCComments(t *testing.T) {
	repoDir := writeDevcontainer(t, `{
		/* block comment */
		"build": {
			"dockerfile": "Dockerfile", // line comment
		},
	}`)

	spec := ResolveBuild(repoDir)

	assert.Equal(t, filepath.Join(repoDir, ".devcontainer", "Dockerfile"), spec.Dockerfile)
}

// TestResolveBuild_MalformedFallsBack verifies that an unparseable file
// falls back to the defaults instead of failing the run.
func TestResolveBuild_MalformedFallsBack(t *testing.T) {
	repoDir := writeDevcontainer(t, `{"build": `)

	spec := ResolveBuild(repoDir)

	assert.Equal(t, filepath.Join(repoDir, ".devcontainer", "Dockerfile"), spec.Dockerfile)
	assert.Equal(t, filepath.Join(repoDir, ".devcontainer"), spec.ContextDir)
}
