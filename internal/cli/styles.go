package cli

import "github.com/charmbracelet/lipgloss"

// Status iconography for the bootstrap steps. Each status line leads with
// one of these, followed by plain or styled text.
const (
	iconSuccess = "✅"
	iconPending = "⏳"
	iconInfo    = "ℹ️"
	iconError   = "❌"
)

// Color palette for the CLI output, tuned for dark terminal backgrounds.
const (
	colorInfo  = lipgloss.Color("#3B82F6")
	colorError = lipgloss.Color("#EF4444")
)

// Base styles reused across the status, help, and error output.
var (
	// boldStyle highlights names the user will want to pick out of a
	// status line: the engine, the volume, the image tag.
	boldStyle = lipgloss.NewStyle().Bold(true)

	// infoStyle is for the onboarding guidance headers.
	infoStyle = lipgloss.NewStyle().Foreground(colorInfo)

	// cmdStyle is for copy-pasteable commands in the onboarding guidance.
	cmdStyle = lipgloss.NewStyle().Bold(true)

	// errorStyle is for failure output on stderr.
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)
