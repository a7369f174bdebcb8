package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/harian/internal/sequence"
)

func newStatusCommand(ctx context.Context, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the workspace: settings, entry count, next sequence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mgr, s, err := opts.open()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace: %s\n", mgr.Root())
			fmt.Fprintf(out, "Title:     %s\n", s.Project.Title)

			if !s.Initialized() {
				fmt.Fprintln(out, "Not initialized yet (run 'harian init').")
				return nil
			}

			files, err := mgr.SolutionFiles(s)
			if err != nil {
				return err
			}
			d, err := sequence.Derive(s.Index.Notation, s.Project.Start, time.Now(), files)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Started:   %s\n", s.Project.Start)
			fmt.Fprintf(out, "Notation:  %s\n", s.Index.Notation)
			fmt.Fprintf(out, "Entries:   %d\n", len(files))
			fmt.Fprintf(out, "Next:      %s\n", d.Full)
			return nil
		},
	}

	return cmd
}
