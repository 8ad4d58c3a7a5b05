package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/internal/tui"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(opts *runtime.Options) *cobra.Command {
	var commit string

	cmd := &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch, or to a commit with --commit",
		Long: `Switch to a branch, or to a commit with --commit.

An empty --commit value does nothing, so scripts can pass an optional hash
straight through.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commitMode := cmd.Flags().Changed("commit")
			if commitMode && len(args) > 0 {
				return fmt.Errorf("cannot check out branch %s and --commit at the same time", args[0])
			}
			if !commitMode && len(args) == 0 {
				return fmt.Errorf("a branch or --commit is required")
			}

			return withRepo(opts, func(ctx *runtime.Context) error {
				if commitMode {
					if err := ctx.Repo.CheckoutCommit(cmd.Context(), commit); err != nil {
						return err
					}
					if commit != "" {
						ctx.Splog.Info("Checked out %s", tui.ColorYellow(commit))
					}
					return nil
				}

				if err := ctx.Repo.CheckoutBranch(cmd.Context(), args[0]); err != nil {
					return err
				}
				ctx.Splog.Info("Checked out %s", tui.ColorBranch(args[0]))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&commit, "commit", "", "Commit to check out (empty does nothing)")

	return cmd
}
