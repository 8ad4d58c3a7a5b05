package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"githelper.dev/githelper/internal/cli"
	"githelper.dev/githelper/pkg/githelper"
	"githelper.dev/githelper/testhelpers"
)

// runCLI executes the command tree in-process with an isolated config file
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GITHELPER_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	if os.Getenv("GITHELPER_LOG_FILE") == "" {
		t.Setenv("GITHELPER_LOG_FILE", filepath.Join(t.TempDir(), "githelper.log"))
	}

	cmd := cli.NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCloneAndStatusCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	dest := filepath.Join(scene.Dir, "x")

	out, err := runCLI(t, "clone", scene.Remote, dest, "--branch", "main")
	require.NoError(t, err)
	require.Contains(t, out, "Cloned "+scene.Remote+" (branch main) into "+dest)

	out, err = runCLI(t, "--repo", dest, "status")
	require.NoError(t, err)
	require.Contains(t, out, "On branch main tracking origin/main")
	require.Contains(t, out, "Working tree clean")

	out, err = runCLI(t, "-C", dest, "status", "--json")
	require.NoError(t, err)
	var status githelper.StatusSummary
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	require.Equal(t, "main", status.Current)
	require.Equal(t, "origin/main", status.Tracking)
}

func TestCloneUsesConfiguredDefaultBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.RemoteSceneSetup(s); err != nil {
			return err
		}
		if err := s.Repo.CreateAndCheckoutBranch("develop"); err != nil {
			return err
		}
		return s.Repo.PushBranch("origin", "develop")
	})

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("defaultBranch: develop\n"), 0600))

	dest := filepath.Join(scene.Dir, "dev")
	_, err := runCLI(t, "--config", configPath, "clone", scene.Remote, dest)
	require.NoError(t, err)

	testhelpers.ExpectHead(t, &testhelpers.GitRepo{Dir: dest}, "develop")
}

func TestLogCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("first commit", "a"); err != nil {
			return err
		}
		return s.Repo.CreateChangeAndCommit("second commit", "b")
	})

	out, err := runCLI(t, "-C", scene.Repo.Dir, "log")
	require.NoError(t, err)
	require.Contains(t, out, "second commit")
	require.Contains(t, out, "first commit")
	require.Contains(t, out, "2 commit(s)")

	out, err = runCLI(t, "-C", scene.Repo.Dir, "log", "-n", "1", "--json")
	require.NoError(t, err)
	var summary githelper.LogSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.Equal(t, 1, summary.Total)
	require.Equal(t, "second commit", summary.Latest.Message)

	_, err = runCLI(t, "-C", scene.Repo.Dir, "log", "-n", "1", "--from", "HEAD~1")
	require.Error(t, err)
}

func TestHeadAndCommitExistsCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	sha, err := scene.Repo.GetCurrentSHA()
	require.NoError(t, err)

	out, err := runCLI(t, "-C", scene.Repo.Dir, "head")
	require.NoError(t, err)
	require.Equal(t, sha+"\n", out)

	out, err = runCLI(t, "-C", scene.Repo.Dir, "commit-exists", sha[:8])
	require.NoError(t, err)
	require.Equal(t, sha+"\n", out)

	_, err = runCLI(t, "-C", scene.Repo.Dir, "commit-exists", "does-not-exist")
	require.Error(t, err)
}

func TestCheckoutCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(s); err != nil {
			return err
		}
		if err := s.Repo.CreateAndCheckoutBranch("feature"); err != nil {
			return err
		}
		if err := s.Repo.CreateChangeAndCommit("feature", "f"); err != nil {
			return err
		}
		return s.Repo.CheckoutBranch("main")
	})

	_, err := runCLI(t, "-C", scene.Repo.Dir, "checkout", "feature")
	require.NoError(t, err)
	testhelpers.ExpectHead(t, scene.Repo, "feature")

	_, err = runCLI(t, "-C", scene.Repo.Dir, "checkout", "--commit", "")
	require.NoError(t, err)
	testhelpers.ExpectHead(t, scene.Repo, "feature")

	mainSHA, err := scene.Repo.GetRevision("main")
	require.NoError(t, err)
	_, err = runCLI(t, "-C", scene.Repo.Dir, "co", "--commit", mainSHA)
	require.NoError(t, err)
	testhelpers.ExpectHead(t, scene.Repo, "HEAD")
	testhelpers.ExpectRevision(t, scene.Repo, "HEAD", mainSHA)

	_, err = runCLI(t, "-C", scene.Repo.Dir, "checkout")
	require.Error(t, err)
	_, err = runCLI(t, "-C", scene.Repo.Dir, "checkout", "main", "--commit", mainSHA)
	require.Error(t, err)
}

func TestFetchPullAndResetCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	clone := scene.Clone(t, "clone")

	require.NoError(t, scene.Repo.CreateChangeAndCommit("upstream", "u"))
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))
	upstreamSHA, err := scene.Repo.GetCurrentSHA()
	require.NoError(t, err)

	out, err := runCLI(t, "-C", clone.Dir, "fetch")
	require.NoError(t, err)
	require.Contains(t, out, "Fetched clone")

	_, err = runCLI(t, "-C", clone.Dir, "pull")
	require.NoError(t, err)
	testhelpers.ExpectRevision(t, clone, "HEAD", upstreamSHA)

	require.NoError(t, clone.WriteFile("u_test.txt", "local edit"))
	_, err = runCLI(t, "-C", clone.Dir, "reset")
	require.Error(t, err)

	_, err = runCLI(t, "-C", clone.Dir, "reset", "--hard")
	require.NoError(t, err)
	dirty, err := clone.HasUnstagedChanges()
	require.NoError(t, err)
	require.False(t, dirty)
}

func TestPullWithoutUpstream(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := runCLI(t, "-C", scene.Repo.Dir, "pull")
	require.ErrorIs(t, err, githelper.ErrTrackingUnresolved)
}

func TestRepoDiscoveryFromSubdirectory(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(s); err != nil {
			return err
		}
		return os.MkdirAll(filepath.Join(s.Repo.Dir, "nested", "dir"), 0750)
	})
	t.Chdir(filepath.Join(scene.Repo.Dir, "nested", "dir"))

	out, err := runCLI(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, "On branch main")
}

func TestDefaultLogFile(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	logFile := filepath.Join(t.TempDir(), "logs", "default.log")
	t.Setenv("GITHELPER_LOG_FILE", logFile)

	out, err := runCLI(t, "-C", scene.Repo.Dir, "head")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), strings.TrimSpace(out))
}

func TestExecuteReportsErrorsOnStderr(t *testing.T) {
	t.Setenv("GITHELPER_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("GITHELPER_LOG_FILE", filepath.Join(t.TempDir(), "githelper.log"))
	t.Setenv("DEBUG", "")
	notARepo := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(notARepo))

	cmd := cli.NewRootCmd("test", "none", "unknown")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"-C", notARepo, "head"})

	require.Equal(t, 1, cli.Execute(cmd, &stderr))
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "❌ git command failed")
	require.Contains(t, stderr.String(), "rev-parse")
}

// Verbose mode cannot be turned off once enabled, so this runs last.
func TestVerboseFlag(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	logFile := filepath.Join(t.TempDir(), "githelper.log")

	out, err := runCLI(t, "-C", scene.Repo.Dir, "--verbose", "--log-file", logFile, "checkout", "--commit", "")
	require.NoError(t, err)
	require.Contains(t, out, "no commit given")
	require.True(t, githelper.IsVerbose())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "no commit given")

	out, err = runCLI(t, "-C", scene.Repo.Dir, "--verbose", "checkout", "no-such-branch")
	require.Error(t, err)
	require.Contains(t, out, "checkout failed in repo "+filepath.Base(scene.Repo.Dir))
}
