package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/harian/internal/entry"
	"github.com/faizmokh/harian/internal/ui"
)

func newAddCommand(ctx context.Context, opts *options) *cobra.Command {
	var (
		in      entry.Input
		noInput bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a solved problem: a solution file plus an index row.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, s, err := opts.open()
			if err != nil {
				return err
			}

			if !noInput {
				formIn, ok, err := ui.Run(s.Sites, s.Index.ExtraColumn, s.Index.ExtraName)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				in = formIn
			}

			log := opts.logger()
			defer func() { _ = log.Sync() }()

			p := &entry.Pipeline{Workspace: mgr, Settings: s, Log: log}
			res, err := p.Run(ctx, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %s: %s\n", res.Entry.SeqFull, res.SolutionPath)
			if len(res.Gaps) > 0 {
				fmt.Fprintf(out, "Backfilled %d blank rows (%s..%s)\n", len(res.Gaps), res.Gaps[0], res.Gaps[len(res.Gaps)-1])
			}
			if res.Reformatted {
				fmt.Fprintln(out, "Index columns widened; existing rows reformatted.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Problem title")
	cmd.Flags().StringVar(&in.URL, "url", "", "Problem URL")
	cmd.Flags().StringVar(&in.Site, "site", "", "Practice site")
	cmd.Flags().StringVar(&in.Difficulty, "difficulty", "", "Problem difficulty")
	cmd.Flags().StringVar(&in.Problem, "problem", "", "Problem description")
	cmd.Flags().StringVar(&in.Submitted, "submitted", "", "Your submitted solution")
	cmd.Flags().StringVar(&in.Reference, "reference", "", "Reference solution from the site")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes worth remembering")
	cmd.Flags().StringVar(&in.NB, "nb", "", "Value for the extra index column")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Skip the interactive form and use the flags as-is")

	return cmd
}
