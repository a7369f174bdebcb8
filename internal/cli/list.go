package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/harian/internal/index"
)

func newListCommand(ctx context.Context, opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the recorded entries from the index.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mgr, s, err := opts.open()
			if err != nil {
				return err
			}

			rw := index.Rewriter{Path: mgr.ReadmePath(), Extra: s.Index.ExtraColumn}
			rows, err := rw.Rows()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			count := 0
			for _, r := range rows {
				if r.Title == "" {
					// Gap row: only a day id was recorded.
					if all {
						fmt.Fprintf(out, "%s\t(skipped)\n", r.Day)
					}
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s/%s\n", r.Day, linkText(r.Title), r.Site, r.Difficulty)
				count++
			}
			if count == 0 {
				fmt.Fprintln(out, "No entries yet.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include backfilled blank rows")

	return cmd
}
