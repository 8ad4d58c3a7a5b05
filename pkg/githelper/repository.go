package githelper

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	githelpererrors "githelper.dev/githelper/internal/errors"
	"githelper.dev/githelper/internal/git"
	"githelper.dev/githelper/internal/tui"
)

// Repository is a handle on one git working copy
type Repository struct {
	path     string
	repoName string
	runner   git.Runner
	splog    *tui.Splog
}

type options struct {
	runner git.Runner
	splog  *tui.Splog
}

// Option configures a Repository
type Option func(*options)

// WithRunner makes the Repository execute git through r instead of a
// CommandRunner bound to the repository path
func WithRunner(r Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// WithLogger sends verbose diagnostics to splog instead of stdout
func WithLogger(splog *tui.Splog) Option {
	return func(o *options) {
		o.splog = splog
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.splog == nil {
		o.splog = tui.NewSplog()
	}
	return o
}

// New creates a Repository for the working copy at path. An empty path means
// the current directory. The path is not checked to be a repository; git
// errors surface on the first operation.
func New(path string, opts ...Option) (*Repository, error) {
	return newRepository(path, buildOptions(opts))
}

func newRepository(path string, o *options) (*Repository, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path %s: %w", path, err)
	}

	runner := o.runner
	if runner == nil {
		runner = git.NewCommandRunner(absPath)
	}

	return &Repository{
		path:     absPath,
		repoName: filepath.Base(absPath),
		runner:   runner,
		splog:    o.splog,
	}, nil
}

// Clone clones remoteURL into destination with branch checked out and returns
// a Repository for the new working copy.
func Clone(ctx context.Context, destination, remoteURL, branch string, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)
	if IsVerbose() {
		o.splog.Info("cloning branch %s from %s to %s", branch, remoteURL, destination)
	}

	runner := o.runner
	if runner == nil {
		runner = git.NewCommandRunner("")
	}
	if err := runner.Clone(ctx, remoteURL, destination, "--branch", branch); err != nil {
		o.splog.Debug("clone of %s into %s failed: %v", remoteURL, destination, err)
		return nil, err
	}

	return newRepository(destination, o)
}

// RepoName is the last segment of the repository's absolute path
func (r *Repository) RepoName() string {
	return r.repoName
}

// Path is the repository's absolute path
func (r *Repository) Path() string {
	return r.path
}

// verbosef writes a diagnostic message when verbose mode is on
func (r *Repository) verbosef(format string, args ...interface{}) {
	if IsVerbose() {
		r.splog.Info(format, args...)
	}
}

// failed records a git failure in the debug log and returns err unchanged
func (r *Repository) failed(op string, err error) error {
	r.splog.Debug("%s failed in repo %s: %v", op, r.repoName, err)
	return err
}

// Log returns the history in the range from..to. Either bound may be empty.
func (r *Repository) Log(ctx context.Context, from, to string) (*LogSummary, error) {
	summary, err := r.runner.Log(ctx, git.LogOptions{From: from, To: to})
	if err != nil {
		return nil, r.failed("log", err)
	}
	return summary, nil
}

// LogLast returns the size most recent commits. size is passed to git as is.
func (r *Repository) LogLast(ctx context.Context, size int) (*LogSummary, error) {
	summary, err := r.runner.Log(ctx, git.Last(size))
	if err != nil {
		return nil, r.failed("log", err)
	}
	return summary, nil
}

// CommitExists verifies that hash resolves to a commit and returns the
// resolved hash.
func (r *Repository) CommitExists(ctx context.Context, hash string) (string, error) {
	r.verbosef("Checking commit existence for %s", hash)

	out, err := r.runner.RevParse(ctx, "-q", "--verify", hash+"^{commit}")
	if err != nil {
		return "", r.failed("rev-parse", err)
	}
	resolved := strings.TrimSpace(out)
	if resolved == "" {
		return "", githelpererrors.NewCommitNotFoundError(hash)
	}
	return resolved, nil
}

// Fetch fetches from the configured remotes
func (r *Repository) Fetch(ctx context.Context) error {
	if err := r.runner.Fetch(ctx); err != nil {
		return r.failed("fetch", err)
	}
	r.verbosef("repo %s successfully fetched", r.repoName)
	return nil
}

// Status returns a fresh snapshot of the working copy
func (r *Repository) Status(ctx context.Context) (*StatusSummary, error) {
	status, err := r.runner.Status(ctx)
	if err != nil {
		return nil, r.failed("status", err)
	}
	if IsVerbose() {
		data, _ := json.Marshal(status)
		r.splog.Info("status of repo %s: %s", r.repoName, data)
	}
	return status, nil
}

// CheckoutBranch switches the working copy to branch
func (r *Repository) CheckoutBranch(ctx context.Context, branch string) error {
	r.verbosef("checkout %s, in branch %s", r.repoName, branch)
	if err := r.runner.Checkout(ctx, branch); err != nil {
		return r.failed("checkout", err)
	}
	r.verbosef("repo %s is now in branch %s", r.repoName, branch)
	return nil
}

// CheckoutCommit switches the working copy to commit. An empty commit is a no-op.
func (r *Repository) CheckoutCommit(ctx context.Context, commit string) error {
	if commit == "" {
		r.verbosef("no commit given")
		return nil
	}
	if err := r.runner.Checkout(ctx, commit); err != nil {
		return r.failed("checkout", err)
	}
	r.verbosef("repo %s is now in commit %s", r.repoName, commit)
	return nil
}

// ParseTracking splits a tracking reference on its first slash into remote
// and branch. Branch names may contain further slashes.
func ParseTracking(tracking string) (remote, branch string, err error) {
	remote, branch, ok := strings.Cut(tracking, "/")
	if !ok {
		return "", "", githelpererrors.NewTrackingError(tracking)
	}
	return remote, branch, nil
}

// PullOnlyFastForward pulls the current branch from its upstream, failing
// instead of creating a merge commit. The upstream is read from Status.
func (r *Repository) PullOnlyFastForward(ctx context.Context) error {
	status, err := r.Status(ctx)
	if err != nil {
		return err
	}

	remote, branch, err := ParseTracking(status.Tracking)
	if err != nil {
		return err
	}

	r.verbosef("pulling branch %s from remote %s", branch, remote)
	if err := r.runner.Pull(ctx, remote, branch, "--ff-only"); err != nil {
		return r.failed("pull", err)
	}
	return nil
}

// ResetHard resets the index and working tree to HEAD
func (r *Repository) ResetHard(ctx context.Context) error {
	if err := r.runner.Reset(ctx, git.ResetHard, "HEAD"); err != nil {
		return r.failed("reset", err)
	}
	r.verbosef("repo %s has been reset", r.repoName)
	return nil
}

// CurrentCommitHash returns the hash HEAD points to
func (r *Repository) CurrentCommitHash(ctx context.Context) (string, error) {
	out, err := r.runner.RevParse(ctx, "HEAD")
	if err != nil {
		return "", r.failed("rev-parse", err)
	}
	commit := strings.TrimSpace(out)
	r.verbosef("current HEAD commit %s", commit)
	return commit, nil
}
