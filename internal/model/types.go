package model

import "fmt"

// Fixed identifiers of the bootstrap environment. These mirror the layout
// consumed and produced relative to the invocation directory:
//
//	./zmk/     cloned firmware repository (created if absent)
//	./build/   firmware build output (created if absent)
//	./config/  user-managed keymap configuration (never created by zmkenv)
const (
	// RepoURL is the upstream ZMK firmware repository cloned into RepoDirName.
	RepoURL = "https://github.com/zmkfirmware/zmk.git"

	// RepoDirName is the repository checkout directory under the base directory.
	RepoDirName = "zmk"

	// BuildDirName is the firmware build output directory under the base directory.
	BuildDirName = "build"

	// ConfigDirName is the user-managed config directory under the base
	// directory. It backs the bind-mounted volume and must already exist
	// for the mount to be meaningful.
	ConfigDirName = "config"

	// VolumeName is the container volume bound to the config directory.
	// The volume is destroyed and recreated on every run so its bind device
	// always points at the current base directory, never a stale one.
	VolumeName = "zmk-config"

	// ImageTag is the tag of the dev-container image built from the
	// repository's .devcontainer Dockerfile. The image is rebuilt every run;
	// layer caching is the engine's concern.
	ImageTag = "zmk-west"
)

// In-container paths and session parameters. The interactive session mounts
// exactly three paths and publishes exactly one port.
const (
	// RepoMountPath is where the cloned repository is mounted in the session.
	RepoMountPath = "/workspaces/zmk"

	// ConfigMountPath is where the config volume is mounted in the session.
	ConfigMountPath = "/workspaces/zmk-config"

	// BuildMountPath is where the build directory is mounted in the session.
	BuildMountPath = "/workspaces/build"

	// SessionPort is the single published port mapping (host:container).
	// Port 3000 serves the ZMK devcontainer's documentation dev server.
	SessionPort = "3000:3000"

	// SessionShell is the entry command of the interactive session.
	SessionShell = "/bin/bash"
)

// Firmware build identifiers referenced by the onboarding instructions.
const (
	// Board is the MCU board identifier passed to west build.
	Board = "seeeduino_xiao_ble"

	// ShieldPrefix is the keyboard shield name; the left and right halves
	// are built as <ShieldPrefix>_left and <ShieldPrefix>_right.
	ShieldPrefix = "totem"
)

// ExitCode defines the CLI process exit codes. zmkenv has a deliberately
// small exit surface: 0 for a completed run (including an abnormal exit from
// the interactive session) and 1 for any failure, with the missing-engine
// case being the only failure that gets a curated message.
type ExitCode int

const (
	// ExitSuccess indicates the full bootstrap sequence completed.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates any failure, including the no-engine-found case.
	ExitFailure ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate component errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
