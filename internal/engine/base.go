package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ExecCommandFunc is the function signature for creating exec.Cmd.
// This allows injection of mock implementations for testing.
type ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

// Option configures a BaseCLIEngine.
type Option func(*BaseCLIEngine)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(e *BaseCLIEngine) {
		e.execCommand = fn
	}
}

// WithLogger sets the logger used for subprocess diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *BaseCLIEngine) {
		e.logger = logger
	}
}

// BaseCLIEngine provides the common CLI implementation for container
// engines. Docker and Podman engines embed this struct; the volume, build,
// and run subcommands are identical across both, so all Engine methods
// live here and only the name differs per concrete type.
type BaseCLIEngine struct {
	name        string
	binaryPath  string
	execCommand ExecCommandFunc
	logger      *log.Logger
}

// NewBaseCLIEngine creates a base engine around the given binary path.
func NewBaseCLIEngine(name, binaryPath string, opts ...Option) *BaseCLIEngine {
	e := &BaseCLIEngine{
		name:        name,
		binaryPath:  binaryPath,
		execCommand: exec.CommandContext,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine name.
func (e *BaseCLIEngine) Name() string {
	return e.name
}

// BinaryPath returns the path to the container engine binary.
func (e *BaseCLIEngine) BinaryPath() string {
	return e.binaryPath
}

// --- Argument Builders ---

// VolumeRemoveArgs constructs arguments for a volume remove command.
//
// Generated command: <binary> volume rm [--force] <name>
func (e *BaseCLIEngine) VolumeRemoveArgs(name string, force bool) []string {
	args := []string{"volume", "rm"}
	if force {
		args = append(args, "--force")
	}
	return append(args, name)
}

// VolumeCreateArgs constructs arguments for a volume create command.
// Driver options are emitted in slice order, so the generated argv is
// deterministic.
//
// Generated command: <binary> volume create [--driver <d>] [-o k=v]... <name>
func (e *BaseCLIEngine) VolumeCreateArgs(opts VolumeOptions) []string {
	args := []string{"volume", "create"}
	if opts.Driver != "" {
		args = append(args, "--driver", opts.Driver)
	}
	for _, o := range opts.DriverOpts {
		args = append(args, "-o", o)
	}
	return append(args, opts.Name)
}

// BuildArgs constructs arguments for an image build command.
//
// Generated command: <binary> build [-t <tag>] [-f <dockerfile>] <context>
func (e *BaseCLIEngine) BuildArgs(opts BuildOptions) []string {
	args := []string{"build"}
	if opts.Tag != "" {
		args = append(args, "-t", opts.Tag)
	}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	return append(args, opts.ContextDir)
}

// RunArgs constructs arguments for a container run command.
//
// Generated command: <binary> run [options] <image> [command...]
func (e *BaseCLIEngine) RunArgs(opts RunOptions) []string {
	args := []string{"run"}

	if opts.Interactive {
		args = append(args, "-i")
	}
	if opts.TTY {
		args = append(args, "-t")
	}
	if opts.Remove {
		args = append(args, "--rm")
	}
	for _, s := range opts.SecurityOpts {
		args = append(args, "--security-opt", s)
	}
	if opts.WorkDir != "" {
		args = append(args, "--workdir", opts.WorkDir)
	}
	for _, v := range opts.Volumes {
		args = append(args, "-v", v)
	}
	for _, p := range opts.Ports {
		args = append(args, "-p", p)
	}

	args = append(args, opts.Image)
	return append(args, opts.Command...)
}

// --- Engine Operations ---

// RemoveVolume removes a named volume.
func (e *BaseCLIEngine) RemoveVolume(ctx context.Context, name string, force bool) error {
	return e.runQuiet(ctx, e.VolumeRemoveArgs(name, force)...)
}

// CreateVolume creates a named volume.
func (e *BaseCLIEngine) CreateVolume(ctx context.Context, opts VolumeOptions) error {
	return e.runQuiet(ctx, e.VolumeCreateArgs(opts)...)
}

// Build builds an image from a Dockerfile. Build output is suppressed —
// the caller shows its own progress — and attached to the error on failure.
func (e *BaseCLIEngine) Build(ctx context.Context, opts BuildOptions) error {
	return e.runQuiet(ctx, e.BuildArgs(opts)...)
}

// RunInteractive runs a container wired to the streams in opts and blocks
// until it exits. The container's own exit code is carried in RunResult;
// only a failure to execute the engine binary is an error.
func (e *BaseCLIEngine) RunInteractive(ctx context.Context, opts RunOptions) (*RunResult, error) {
	args := e.RunArgs(opts)
	e.logger.Debug("starting container session", "engine", e.name, "args", strings.Join(args, " "))

	cmd := e.execCommand(ctx, e.binaryPath, args...)
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()

	result := &RunResult{}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}
	return result, nil
}

// runQuiet executes an engine subcommand with its output captured rather
// than streamed. On failure the captured tail is attached to the error so
// the user still sees what the engine reported.
func (e *BaseCLIEngine) runQuiet(ctx context.Context, args ...string) error {
	e.logger.Debug("running engine command", "engine", e.name, "args", strings.Join(args, " "))

	cmd := e.execCommand(ctx, e.binaryPath, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if tail := outputTail(out.String()); tail != "" {
			return fmt.Errorf("command %s %v failed: %w: %s", e.binaryPath, args, err, tail)
		}
		return fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}
	return nil
}

// outputTailLines caps how much captured engine output is attached to an
// error. Engine build failures can be preceded by hundreds of layer lines;
// the trailing lines carry the actual diagnostic.
const outputTailLines = 10

func outputTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > outputTailLines {
		lines = lines[len(lines)-outputTailLines:]
	}
	return strings.Join(lines, "\n")
}
