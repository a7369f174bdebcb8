package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/faizmokh/harian/internal/index"
)

func newShowCommand(ctx context.Context, opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the index table in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mgr, s, err := opts.open()
			if err != nil {
				return err
			}

			rw := index.Rewriter{Path: mgr.ReadmePath(), Extra: s.Index.ExtraColumn}
			region, err := rw.Region()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprint(out, region)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(0),
			)
			if err != nil {
				return fmt.Errorf("build renderer: %w", err)
			}
			rendered, err := renderer.Render(region)
			if err != nil {
				return fmt.Errorf("render index: %w", err)
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the raw markdown instead of styling it")

	return cmd
}
