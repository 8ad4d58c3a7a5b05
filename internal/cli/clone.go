package cli

import (
	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/pkg/githelper"
)

// newCloneCmd creates the clone command
func newCloneCmd(opts *runtime.Options) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "clone <remote-url> <destination>",
		Short: "Clone a repository with a branch checked out",
		Long: `Clone a repository with a branch checked out.

The branch defaults to defaultBranch from the config file, or main.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.NewContext(*opts)
			if err != nil {
				return err
			}
			defer ctx.Close()

			if branch == "" {
				branch = ctx.Config.DefaultBranch
			}

			repo, err := githelper.Clone(cmd.Context(), args[1], args[0], branch, ctx.RepositoryOptions()...)
			if err != nil {
				return err
			}

			ctx.Splog.Info("Cloned %s (branch %s) into %s", args[0], branch, repo.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to check out")

	return cmd
}
