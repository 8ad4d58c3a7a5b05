package cli

import (
	"github.com/spf13/cobra"

	"githelper.dev/githelper/internal/runtime"
	"githelper.dev/githelper/internal/tui"
	"githelper.dev/githelper/pkg/githelper"
)

// newLogCmd creates the log command
func newLogCmd(opts *runtime.Options) *cobra.Command {
	var (
		from   string
		to     string
		count  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history, optionally limited to a range or the last N commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepo(opts, func(ctx *runtime.Context) error {
				var (
					summary *githelper.LogSummary
					err     error
				)
				if cmd.Flags().Changed("number") {
					summary, err = ctx.Repo.LogLast(cmd.Context(), count)
				} else {
					summary, err = ctx.Repo.Log(cmd.Context(), from, to)
				}
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(ctx, summary)
				}
				ctx.Splog.Page(tui.RenderLog(summary))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Exclusive start of the range")
	cmd.Flags().StringVar(&to, "to", "", "Inclusive end of the range (default: HEAD)")
	cmd.Flags().IntVarP(&count, "number", "n", 0, "Show only the N most recent commits")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the log summary as JSON")
	cmd.MarkFlagsMutuallyExclusive("number", "from")
	cmd.MarkFlagsMutuallyExclusive("number", "to")

	return cmd
}
