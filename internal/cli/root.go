// Package cli implements the cobra-based command layer for zmkenv.
//
// zmkenv is a single-purpose tool: the root command itself runs the full
// bootstrap sequence. There are no subcommands, flags, or configuration
// inputs — the tool operates on the directory it is invoked from, and
// --help/--version are the only framework surfaces.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/totemkb/zmkenv/internal/model"
)

// logger carries structured diagnostics (config warnings, subprocess argv,
// session exit codes) to stderr, keeping stdout for the status lines and
// progress bars that are the tool's actual output.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// Running it executes the whole bootstrap sequence and ends in the
// interactive container session.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zmkenv",
		Short: "Bootstrap a local ZMK firmware build environment",
		Long: `zmkenv bootstraps a containerized ZMK firmware build environment in the
current directory: it clones the ZMK source repository, provisions a build
output directory, recreates the config volume bound to ./config, builds the
dev-container image, and drops you into an interactive build shell.

Run it from a directory containing your ./config keymap directory:

  mkdir my-keyboard && cd my-keyboard
  # place your ZMK config under ./config
  zmkenv`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Errors are formatted by Execute.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd.Context())
		},
	}

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// A CLIError with an empty message carries only an exit code — the failing
// component has already printed its own curated message (the engine
// detection failure is the one such path). Everything else is formatted as
// a plain "Error:" line on stderr.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			if cliErr.Message != "" {
				fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+cliErr.Error()))
			}
			os.Exit(int(cliErr.Code))
		}

		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(int(model.ExitFailure))
	}
}
