package cli

import (
	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
)

// newHeadCmd creates the head command
func newHeadCmd(opts *runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Print the hash of the checked out commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepo(opts, func(ctx *runtime.Context) error {
				hash, err := ctx.Repo.CurrentCommitHash(cmd.Context())
				if err != nil {
					return err
				}
				ctx.Splog.Info("%s", hash)
				return nil
			})
		},
	}
}

// newCommitExistsCmd creates the commit-exists command
func newCommitExistsCmd(opts *runtime.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "commit-exists <hash>",
		Short: "Print the full hash of a commit, failing if it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(opts, func(ctx *runtime.Context) error {
				hash, err := ctx.Repo.CommitExists(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				ctx.Splog.Info("%s", hash)
				return nil
			})
		},
	}
}
