package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/harian/internal/config"
	"github.com/faizmokh/harian/internal/index"
	"github.com/faizmokh/harian/internal/sequence"
)

func newInitCommand(ctx context.Context, opts *options) *cobra.Command {
	var (
		title    string
		notation string
		sparse   bool
		nb       bool
		nbName   string
		sites    []string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a workspace in the target directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mgr, err := opts.manager()
			if err != nil {
				return err
			}

			s, err := config.Load(mgr.SettingsPath())
			switch {
			case err == nil && s.Initialized():
				return fmt.Errorf("workspace already initialized at %s", mgr.Root())
			case errors.Is(err, config.ErrNotFound):
				s = config.Default()
			case err != nil:
				return err
			}

			if title != "" {
				s.Project.Title = title
			}
			if notation != "" {
				s.Index.Notation = sequence.Notation(notation)
			}
			s.Index.Sparse = sparse
			s.Index.ExtraColumn = nb
			if nbName != "" {
				s.Index.ExtraName = nbName
			}
			if nb {
				if need := index.Need(s.Index.ExtraName); need > s.Index.Widths.Extra {
					s.Index.Widths.Extra = need
				}
			}
			if len(sites) > 0 {
				s.Sites = sites
			}
			if err := s.Validate(); err != nil {
				return err
			}

			s.Project.Start = hyphenDate(time.Now())
			if err := mgr.Scaffold(s); err != nil {
				return err
			}
			if err := s.Save(mgr.SettingsPath()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized workspace at %s\n", mgr.Root())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title used in the README and solution files")
	cmd.Flags().StringVar(&notation, "notation", "", `Sequence notation: "numeric" or "date"`)
	cmd.Flags().BoolVar(&sparse, "sparse", false, "Backfill a blank index row for every skipped day")
	cmd.Flags().BoolVar(&nb, "nb", false, "Enable the extra index column")
	cmd.Flags().StringVar(&nbName, "nb-name", "", "Header label of the extra column")
	cmd.Flags().StringSliceVar(&sites, "site", nil, "Practice sites to suggest in the entry form (repeatable)")

	return cmd
}
