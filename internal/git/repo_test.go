package git_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"githelper.dev/githelper/internal/git"
	"githelper.dev/githelper/testhelpers"
)

func TestFindRepoRoot(t *testing.T) {
	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.WriteFile("a/b/file.txt", "x")
		})

		root, err := git.FindRepoRoot(filepath.Join(scene.Repo.Dir, "a", "b"))
		require.NoError(t, err)
		require.Equal(t, scene.Repo.Dir, root)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := git.FindRepoRoot(t.TempDir())
		require.Error(t, err)
	})
}

func TestHeadBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	branch, err := git.HeadBranch(scene.Repo.Dir)
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	require.NoError(t, scene.Repo.RunGitCommand("checkout", "--detach", "HEAD"))
	branch, err = git.HeadBranch(scene.Repo.Dir)
	require.NoError(t, err)
	require.Equal(t, "HEAD", branch)
}
