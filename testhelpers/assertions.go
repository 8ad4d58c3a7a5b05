package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"githelper.dev/githelper/internal/git"
)

// ExpectHead asserts which branch HEAD is on, read through go-git rather than
// the git binary. Pass "HEAD" to assert a detached HEAD.
func ExpectHead(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	branch, err := git.HeadBranch(repo.Dir)
	require.NoError(t, err, "Failed to read HEAD")
	require.Equal(t, expected, branch, "HEAD does not match")
}

// ExpectRevision asserts that rev resolves to sha.
func ExpectRevision(t *testing.T, repo *GitRepo, rev, sha string) {
	t.Helper()

	actual, err := repo.GetRevision(rev)
	require.NoError(t, err, "Failed to resolve %s", rev)
	require.Equal(t, sha, actual, "%s does not match", rev)
}
