// Package errors provides sentinel errors and custom error types for githelper.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrCommitNotFound indicates that a revision did not resolve to a commit
	ErrCommitNotFound = errors.New("commit not found")

	// ErrTrackingUnresolved indicates that remote and branch could not be
	// derived from a tracking reference
	ErrTrackingUnresolved = errors.New("cannot determine remote and branch")
)

// TrackingError represents a tracking reference that is not of the form remote/branch
type TrackingError struct {
	Tracking string
}

func (e *TrackingError) Error() string {
	return fmt.Sprintf("cannot determine remote and branch from tracking %q", e.Tracking)
}

// Is returns true if the target error is ErrTrackingUnresolved
func (e *TrackingError) Is(target error) bool {
	return target == ErrTrackingUnresolved
}

// NewTrackingError creates a new TrackingError
func NewTrackingError(tracking string) *TrackingError {
	return &TrackingError{Tracking: tracking}
}

// CommitNotFoundError represents a revision that git resolved to nothing
type CommitNotFoundError struct {
	Revision string
}

func (e *CommitNotFoundError) Error() string {
	return fmt.Sprintf("commit %s does not exist", e.Revision)
}

// Is returns true if the target error is ErrCommitNotFound
func (e *CommitNotFoundError) Is(target error) bool {
	return target == ErrCommitNotFound
}

// NewCommitNotFoundError creates a new CommitNotFoundError
func NewCommitNotFoundError(revision string) *CommitNotFoundError {
	return &CommitNotFoundError{Revision: revision}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
