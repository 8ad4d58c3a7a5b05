package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/internal/tui"
)

// newStatusCmd creates the status command
func newStatusCmd(opts *runtime.Options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the branch, upstream and changed files of the working copy",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepo(opts, func(ctx *runtime.Context) error {
				status, err := ctx.Repo.Status(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(ctx, status)
				}
				ctx.Splog.Page(tui.RenderStatus(status))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the status as JSON")

	return cmd
}

// writeJSON prints v as indented JSON on the console
func writeJSON(ctx *runtime.Context, v interface{}) error {
	enc := json.NewEncoder(ctx.Splog.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
