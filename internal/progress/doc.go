// Package progress implements progress reporting for the zmkenv bootstrap
// steps.
//
// It is split into two layers:
//
//   - Tracker: a pure translation from absolute (current, max) progress
//     reports — as emitted by a clone transport — into bounded, monotonically
//     non-decreasing bar positions. When a reporter announces a max count the
//     bar length is rescaled to it; the position always advances by exactly
//     the delta against the previously displayed position and never regresses.
//   - Bar: a terminal renderer around charmbracelet/bubbles' progress
//     component, driven synchronously with carriage-return redraws. zmkenv is
//     strictly sequential, so no bubbletea program loop is involved.
//
// Keeping the translation pure makes the monotonicity and rescaling rules
// testable without any terminal.
package progress
