// Package tui provides the terminal niceties around dirsum's plain-text
// output: interactive-mode detection, the lipgloss style palette used by
// the verify report, and a bubbletea spinner shown while long scans run.
//
// Everything here degrades gracefully: in non-interactive mode (pipes,
// CI, NO_COLOR) the spinner collapses to a single log line and callers
// are expected to skip styling.
package tui
