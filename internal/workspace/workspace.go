// Package workspace resolves the base directory of a zmkenv run and
// provisions the directories under it.
//
// The base directory is the process working directory at invocation time,
// resolved once to an absolute path and threaded explicitly through every
// component. Nothing below re-reads the working directory, which keeps the
// components pure given their inputs and testable against a temp directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/totemkb/zmkenv/internal/model"
)

// Workspace is the resolved root of a bootstrap run. All relative layout —
// repo checkout, build output, config directory — hangs off BaseDir.
type Workspace struct {
	// BaseDir is the absolute path of the invocation directory.
	BaseDir string
}

// Resolve creates a Workspace from the current working directory.
func Resolve() (*Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return At(cwd)
}

// At creates a Workspace rooted at the given directory, resolving it to an
// absolute path. Exists so tests and callers can root a workspace without
// changing the process working directory.
func At(dir string) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory %q: %w", dir, err)
	}
	return &Workspace{BaseDir: abs}, nil
}

// RepoDir returns the firmware repository checkout path.
func (w *Workspace) RepoDir() string {
	return filepath.Join(w.BaseDir, model.RepoDirName)
}

// BuildDir returns the firmware build output path.
func (w *Workspace) BuildDir() string {
	return filepath.Join(w.BaseDir, model.BuildDirName)
}

// ConfigDir returns the user-managed config directory path that backs the
// bind-mounted volume.
func (w *Workspace) ConfigDir() string {
	return filepath.Join(w.BaseDir, model.ConfigDirName)
}

// EnsureBuildDir makes sure the build directory exists, creating it and any
// missing parents if needed. Returns true when the directory was created,
// false when it already existed. An existing directory is success, not an
// error — provisioning is idempotent.
func (w *Workspace) EnsureBuildDir() (bool, error) {
	dir := w.BuildDir()

	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create build directory %q: %w", dir, err)
	}
	return true, nil
}

// RepoExists reports whether the repository checkout directory is present.
// Only the directory's existence is checked — its contents, remote, and
// branch state are not validated.
func (w *Workspace) RepoExists() bool {
	info, err := os.Stat(w.RepoDir())
	return err == nil && info.IsDir()
}

// ConfigExists reports whether the user-managed config directory is present.
func (w *Workspace) ConfigExists() bool {
	info, err := os.Stat(w.ConfigDir())
	return err == nil && info.IsDir()
}
