// Package cli implements the githelper command tree.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &runtime.Options{}

	rootCmd := &cobra.Command{
		Use:   "githelper",
		Short: "Drive a git working copy: clone, inspect, check out, fetch, pull and reset",
		Long: `githelper drives a git working copy from scripts and tooling.

Every command runs against the repository given by --repo, or the repository
containing the current directory.`,
		Version:       version + " (" + commit + ", " + date + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.Out = cmd.OutOrStdout()
			tui.ConfigureColor()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.RepoDir, "repo", "C", "", "Path to the repository (default: repository containing the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log diagnostic information for every git operation")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to the config file (default: $GITHELPER_CONFIG or the user config directory)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "Rotating log file that records every message (default: $GITHELPER_LOG_FILE or ~/.githelper/logs/githelper.log)")

	rootCmd.AddCommand(
		newCloneCmd(opts),
		newLogCmd(opts),
		newStatusCmd(opts),
		newHeadCmd(opts),
		newCommitExistsCmd(opts),
		newFetchCmd(opts),
		newCheckoutCmd(opts),
		newPullCmd(opts),
		newResetCmd(opts),
	)

	return rootCmd
}

// withRepo runs fn with a context bound to the selected repository
func withRepo(opts *runtime.Options, fn func(*runtime.Context) error) error {
	ctx, err := runtime.GetContext(*opts)
	if err != nil {
		return err
	}
	defer ctx.Close()
	return fn(ctx)
}

// Execute runs rootCmd and reports a failure on errOut so that stdout only
// carries command output. It returns the process exit code.
func Execute(rootCmd *cobra.Command, errOut io.Writer) int {
	if err := rootCmd.Execute(); err != nil {
		tui.NewSplogWithWriter(errOut).Error("%v", err)
		return 1
	}
	return 0
}
