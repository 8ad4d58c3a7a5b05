package githelper

import githelpererrors "githelper.dev/githelper/internal/errors"

var (
	// ErrCommitNotFound is matched by errors from CommitExists when git
	// resolves the revision to nothing
	ErrCommitNotFound = githelpererrors.ErrCommitNotFound

	// ErrTrackingUnresolved is matched by errors from PullOnlyFastForward when
	// the tracking reference is not of the form remote/branch
	ErrTrackingUnresolved = githelpererrors.ErrTrackingUnresolved
)

type (
	// GitCommandError is returned when git exits unsuccessfully
	GitCommandError = githelpererrors.GitCommandError
	// TrackingError carries the tracking value that could not be split
	TrackingError = githelpererrors.TrackingError
)
