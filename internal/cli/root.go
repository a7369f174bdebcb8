package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/harian/internal/version"
)

// NewRootCommand creates the top-level Cobra command hosting the subcommands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "harian",
		Short:         "Keep a daily practice log: one solution file and one index row per entry.",
		Version:       version.Info(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "Workspace directory (default: $HARIAN_DIR, then the nearest workspace)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newInitCommand(ctx, opts),
		newAddCommand(ctx, opts),
		newListCommand(ctx, opts),
		newShowCommand(ctx, opts),
		newStatusCommand(ctx, opts),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/harian/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
