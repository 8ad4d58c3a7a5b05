package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/internal/tui"
)

// newResetCmd creates the reset command
func newResetCmd(opts *runtime.Options) *cobra.Command {
	var hard bool

	cmd := &cobra.Command{
		Use:   "reset --hard",
		Short: "Discard all index and working tree changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !hard {
				return fmt.Errorf("only --hard resets are supported")
			}
			return withRepo(opts, func(ctx *runtime.Context) error {
				if err := ctx.Repo.ResetHard(cmd.Context()); err != nil {
					return err
				}
				ctx.Splog.Info("Reset %s to HEAD", tui.ColorBranch(ctx.Repo.RepoName()))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&hard, "hard", false, "Reset index and working tree to HEAD")

	return cmd
}
