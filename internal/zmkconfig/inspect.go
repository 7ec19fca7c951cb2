// Package zmkconfig inspects the user-managed config directory that backs
// the bind-mounted volume.
//
// A ZMK user config conventionally carries a west manifest (west.yml)
// alongside the keymap files; its projects pin which firmware modules and
// revisions the in-container west workspace will fetch. Inspection is purely
// advisory — the directory is owned by the user and zmkenv never creates or
// modifies it — but surfacing a missing directory or manifest before the
// session starts saves a confusing failure inside the container.
package zmkconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the west manifest file name inside the config directory.
const ManifestName = "west.yml"

// Manifest is the subset of a west manifest that inspection reports on.
type Manifest struct {
	Manifest struct {
		Remotes  []Remote  `yaml:"remotes"`
		Projects []Project `yaml:"projects"`
	} `yaml:"manifest"`
}

// Remote is a named URL base that manifest projects resolve against.
type Remote struct {
	Name    string `yaml:"name"`
	URLBase string `yaml:"url-base"`
}

// Project is a single west manifest project entry.
type Project struct {
	Name     string `yaml:"name"`
	Remote   string `yaml:"remote"`
	Revision string `yaml:"revision"`
	Import   string `yaml:"import"`
}

// Report is the outcome of inspecting a config directory.
type Report struct {
	// DirExists is false when the config directory is absent, in which
	// case the volume's bind device will point at a dead path.
	DirExists bool

	// ManifestFound is true when west.yml exists and parsed.
	ManifestFound bool

	// Projects are the manifest's project entries, empty unless
	// ManifestFound.
	Projects []Project
}

// Inspect examines the config directory and reports what it found.
// The returned error only reflects a west.yml that exists but cannot be
// parsed; absence of the directory or the manifest is reported through the
// Report fields, since neither is an error for a user-managed directory.
func Inspect(configDir string) (Report, error) {
	var report Report

	info, err := os.Stat(configDir)
	if err != nil || !info.IsDir() {
		return report, nil
	}
	report.DirExists = true

	path := filepath.Join(configDir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return report, nil
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return report, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	report.ManifestFound = true
	report.Projects = manifest.Manifest.Projects
	return report, nil
}
