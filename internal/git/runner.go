package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	githelpererrors "githelper.dev/githelper/internal/errors"
)

// Runner defines the git operations the repository façade depends on.
// This allows the façade to be used with both real git and mock implementations.
type Runner interface {
	// Clone clones remoteURL into destination. Extra args are passed before the URL.
	Clone(ctx context.Context, remoteURL, destination string, args ...string) error

	// History
	Log(ctx context.Context, opts LogOptions) (*LogSummary, error)
	RevParse(ctx context.Context, args ...string) (string, error)

	// Working copy
	Status(ctx context.Context) (*StatusSummary, error)
	Checkout(ctx context.Context, target string) error
	Reset(ctx context.Context, mode ResetMode, revision string) error

	// Remotes
	Fetch(ctx context.Context) error
	Pull(ctx context.Context, remote, branch string, args ...string) error
}

// ResetMode selects the git reset flavour
type ResetMode string

const (
	// ResetHard discards index and working tree changes
	ResetHard ResetMode = "hard"
	// ResetSoft keeps index and working tree
	ResetSoft ResetMode = "soft"
)

// CommandRunner handles execution of git commands in one working directory
type CommandRunner struct {
	workingDir string
	env        []string
}

// NewCommandRunner creates a new CommandRunner. An empty workingDir runs git
// in the process working directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// WithEnv returns a copy of the runner that appends env to the git environment
func (r *CommandRunner) WithEnv(env ...string) *CommandRunner {
	return &CommandRunner{
		workingDir: r.workingDir,
		env:        append(append([]string{}, r.env...), env...),
	}
}

// WorkingDir returns the directory git is run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the output untouched
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// runInternal is the internal implementation shared by Run and RunRaw
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", githelpererrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctxErr)
		}
		return "", githelpererrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// Clone runs git clone. It runs in the runner's working directory, so a
// relative destination is resolved against it.
func (r *CommandRunner) Clone(ctx context.Context, remoteURL, destination string, args ...string) error {
	cloneArgs := append([]string{"clone"}, args...)
	cloneArgs = append(cloneArgs, "--", remoteURL, destination)
	_, err := r.Run(ctx, cloneArgs...)
	return err
}

// Log runs git log with the fixed field mapping and parses the result
func (r *CommandRunner) Log(ctx context.Context, opts LogOptions) (*LogSummary, error) {
	out, err := r.RunRaw(ctx, opts.Args()...)
	if err != nil {
		return nil, err
	}
	return ParseLog(out), nil
}

// RevParse runs git rev-parse with the given arguments
func (r *CommandRunner) RevParse(ctx context.Context, args ...string) (string, error) {
	return r.Run(ctx, append([]string{"rev-parse"}, args...)...)
}

// Status runs git status in porcelain v1 format and parses the result
func (r *CommandRunner) Status(ctx context.Context) (*StatusSummary, error) {
	out, err := r.RunRaw(ctx, "status", "--porcelain=v1", "-b", "-u", "-z")
	if err != nil {
		return nil, err
	}
	return ParseStatus(out), nil
}

// Checkout switches the working copy to a branch, tag or commit
func (r *CommandRunner) Checkout(ctx context.Context, target string) error {
	_, err := r.Run(ctx, "checkout", target)
	return err
}

// Reset runs git reset with the given mode
func (r *CommandRunner) Reset(ctx context.Context, mode ResetMode, revision string) error {
	args := []string{"reset", "--" + string(mode)}
	if revision != "" {
		args = append(args, revision)
	}
	_, err := r.Run(ctx, args...)
	return err
}

// Fetch fetches from the configured remotes
func (r *CommandRunner) Fetch(ctx context.Context) error {
	_, err := r.Run(ctx, "fetch")
	return err
}

// Pull pulls branch from remote. Extra args go before the remote.
func (r *CommandRunner) Pull(ctx context.Context, remote, branch string, args ...string) error {
	pullArgs := append([]string{"pull"}, args...)
	pullArgs = append(pullArgs, remote, branch)
	_, err := r.Run(ctx, pullArgs...)
	return err
}

// LogOptions describes a git log request
type LogOptions struct {
	// From and To bound the range From..To; either may be empty.
	From string
	To   string
	// MaxCount limits the number of commits when non-nil (git log -n).
	MaxCount *int
}

// Args returns the git arguments for the request
func (o LogOptions) Args() []string {
	args := []string{"log", "--pretty=format:" + logFormat}
	if o.MaxCount != nil {
		args = append(args, "-n", strconv.Itoa(*o.MaxCount))
	}
	if o.From != "" || o.To != "" {
		args = append(args, fmt.Sprintf("%s..%s", o.From, o.To))
	}
	return append(args, "--")
}

// Last returns options requesting the n most recent commits
func Last(n int) LogOptions {
	return LogOptions{MaxCount: &n}
}
