package cli

import (
	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/internal/tui"
)

// newFetchCmd creates the fetch command
func newFetchCmd(opts *runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch from the configured remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepo(opts, func(ctx *runtime.Context) error {
				if err := ctx.Repo.Fetch(cmd.Context()); err != nil {
					return err
				}
				ctx.Splog.Info("Fetched %s", tui.ColorBranch(ctx.Repo.RepoName()))
				return nil
			})
		},
	}
}

// newPullCmd creates the pull command
func newPullCmd(opts *runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fast-forward the current branch to its upstream",
		Long: `Fast-forward the current branch to its upstream.

The remote and branch are taken from the branch's tracking reference. The pull
fails instead of creating a merge commit when the branches have diverged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepo(opts, func(ctx *runtime.Context) error {
				if err := ctx.Repo.PullOnlyFastForward(cmd.Context()); err != nil {
					return err
				}
				ctx.Splog.Info("Pulled %s", tui.ColorBranch(ctx.Repo.RepoName()))
				return nil
			})
		},
	}
}
