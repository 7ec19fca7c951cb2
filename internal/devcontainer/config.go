// Package devcontainer resolves the dev-container build inputs from a
// repository checkout.
//
// The devcontainer.json specification supports JSONC (JSON with Comments),
// so this package uses github.com/tidwall/jsonc to strip comments before
// parsing with the standard encoding/json library.
//
// Resolution is advisory: when devcontainer.json is absent, unreadable, or
// carries no build section, the well-known defaults are used and the
// container engine itself reports a genuinely missing Dockerfile.
package devcontainer

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Dir is the conventional dev-container directory inside a repository.
const Dir = ".devcontainer"

// defaultDockerfile is the Dockerfile name assumed when devcontainer.json
// does not specify one.
const defaultDockerfile = "Dockerfile"

// RawDevContainer represents the raw JSON structure of a devcontainer.json
// file. Only the fields relevant to image building are included; other
// fields are silently ignored during parsing.
type RawDevContainer struct {
	// Name is the display name for the dev container.
	Name string `json:"name"`

	// Build specifies how to build the image from a Dockerfile.
	Build *BuildConfig `json:"build,omitempty"`

	// DockerFile is the legacy top-level Dockerfile property, still
	// emitted by older devcontainer configurations.
	DockerFile string `json:"dockerFile,omitempty"`
}

// BuildConfig holds the Dockerfile build configuration.
// This corresponds to the "build" object in devcontainer.json.
type BuildConfig struct {
	// Dockerfile is the Dockerfile path, relative to devcontainer.json.
	Dockerfile string `json:"dockerfile,omitempty"`

	// Context is the build context path, relative to devcontainer.json.
	Context string `json:"context,omitempty"`
}

// BuildSpec is the resolved pair of inputs for an image build.
type BuildSpec struct {
	// Dockerfile is the absolute path of the Dockerfile.
	Dockerfile string

	// ContextDir is the absolute path of the build context directory.
	ContextDir string
}

// ResolveBuild determines the Dockerfile and build context for a repository
// checkout. The defaults are <repo>/.devcontainer/Dockerfile with the
// .devcontainer directory as context; a parseable devcontainer.json can
// override either, with relative paths resolved against .devcontainer.
func ResolveBuild(repoDir string) BuildSpec {
	dcDir := filepath.Join(repoDir, Dir)
	spec := BuildSpec{
		Dockerfile: filepath.Join(dcDir, defaultDockerfile),
		ContextDir: dcDir,
	}

	raw, err := loadConfig(filepath.Join(dcDir, "devcontainer.json"))
	if err != nil {
		return spec
	}

	dockerfile := raw.DockerFile
	if raw.Build != nil && raw.Build.Dockerfile != "" {
		dockerfile = raw.Build.Dockerfile
	}
	if dockerfile != "" {
		spec.Dockerfile = resolveAgainst(dcDir, dockerfile)
	}

	if raw.Build != nil && raw.Build.Context != "" {
		spec.ContextDir = resolveAgainst(dcDir, raw.Build.Context)
	}

	return spec
}

// loadConfig reads a devcontainer.json file, strips JSONC comments, and
// parses it into a RawDevContainer struct.
func loadConfig(path string) (*RawDevContainer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw RawDevContainer
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func resolveAgainst(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
