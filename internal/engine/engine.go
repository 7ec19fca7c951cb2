package engine

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Engine is the container engine operation surface used by the bootstrap
// sequence. Both supported engines accept the same subcommands and flags
// for these operations, so the interface is implemented once by
// BaseCLIEngine and embedded by the concrete engine types.
type Engine interface {
	// Name returns the engine name ("docker" or "podman").
	Name() string

	// BinaryPath returns the resolved path of the engine binary.
	BinaryPath() string

	// RemoveVolume removes a named volume. With force set, removing a
	// volume that does not exist is still reported as an error by some
	// engine versions; callers that treat removal as best-effort ignore
	// the returned error.
	RemoveVolume(ctx context.Context, name string, force bool) error

	// CreateVolume creates a named volume with the given driver options.
	CreateVolume(ctx context.Context, opts VolumeOptions) error

	// Build builds an image from a Dockerfile.
	Build(ctx context.Context, opts BuildOptions) error

	// RunInteractive runs a container attached to the caller's stdio and
	// blocks until it exits. A non-zero container exit lands in
	// RunResult.ExitCode, not in the error — only failures to launch the
	// engine itself are errors.
	RunInteractive(ctx context.Context, opts RunOptions) (*RunResult, error)
}

// VolumeOptions describes a volume create invocation.
type VolumeOptions struct {
	// Name is the volume name.
	Name string

	// Driver is the volume driver (e.g. "local").
	Driver string

	// DriverOpts are -o driver options in "key=value" form. A slice rather
	// than a map so the emitted argument order is deterministic.
	DriverOpts []string
}

// BuildOptions describes an image build invocation.
type BuildOptions struct {
	// Dockerfile is the path to the Dockerfile.
	Dockerfile string

	// ContextDir is the build context directory.
	ContextDir string

	// Tag is the image tag.
	Tag string
}

// RunOptions describes a container run invocation.
type RunOptions struct {
	// Image is the image to run.
	Image string

	// Command is the entry command and its arguments.
	Command []string

	// WorkDir is the working directory inside the container.
	WorkDir string

	// Volumes are -v mounts, each in "source:target" form. Source may be a
	// host path or a volume name.
	Volumes []string

	// Ports are -p mappings in "host:container" form.
	Ports []string

	// SecurityOpts are --security-opt values (e.g. "label=disable").
	SecurityOpts []string

	// Interactive keeps stdin open (-i).
	Interactive bool

	// TTY allocates a pseudo-terminal (-t).
	TTY bool

	// Remove deletes the container on exit (--rm).
	Remove bool

	// Stdin, Stdout, Stderr wire the container to the caller's streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RunResult is the outcome of a container run.
type RunResult struct {
	// ExitCode is the container's exit code.
	ExitCode int
}

// ErrNoEngine is returned by Detect when neither engine binary is installed.
var ErrNoEngine = errors.New("no supported container engine (docker or podman) is installed")

// LookPathFunc resolves an executable name to a path, normally exec.LookPath.
// Injectable so detection is testable on hosts without either engine.
type LookPathFunc func(file string) (string, error)

// Detect resolves the installed container engine.
//
// docker is checked first and tentatively selected; podman, when also
// present, overrides it. Detection is by binary presence only — no daemon
// probe — so a found engine may still fail at first use, which surfaces
// through the failing step. Returns ErrNoEngine when neither binary exists.
func Detect(opts ...Option) (Engine, error) {
	return detectWith(exec.LookPath, opts...)
}

func detectWith(lookPath LookPathFunc, opts ...Option) (Engine, error) {
	var eng Engine

	if path, err := lookPath("docker"); err == nil {
		eng = NewDockerEngine(path, opts...)
	}
	if path, err := lookPath("podman"); err == nil {
		eng = NewPodmanEngine(path, opts...)
	}

	if eng == nil {
		return nil, ErrNoEngine
	}
	return eng, nil
}
