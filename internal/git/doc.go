// Package git runs git commands on behalf of githelper.
//
// It wraps git command execution and turns its output into Go values:
//   - Command execution bound to one working directory (CommandRunner)
//   - Log output parsing into LogSummary records
//   - Porcelain status parsing into StatusSummary records
//   - Repository root discovery
//
// This package should be the only place where git is executed.
package git
