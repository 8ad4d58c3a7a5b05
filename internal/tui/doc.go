// Package tui provides terminal output for githelper.
//
// It handles:
//   - Structured logging and verbose diagnostics (Splog)
//   - Rotating file logs (using lumberjack)
//   - Terminal styling and colors (using lipgloss)
//   - Rendering of log and status results
package tui
