package githelper

import "githelper.dev/githelper/internal/git"

type (
	// LogSummary is the result of Log and LogLast, most recent commit first
	LogSummary = git.LogSummary
	// LogEntry is a single commit
	LogEntry = git.LogEntry
	// StatusSummary is a working copy snapshot returned by Status
	StatusSummary = git.StatusSummary
	// FileStatus is the index and working tree state of one path
	FileStatus = git.FileStatus
	// Runner executes git operations for a Repository
	Runner = git.Runner
)
