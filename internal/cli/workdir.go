package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"seqpipes.dev/seqpipes/internal/workdir"
)

// newWorkdirCmd creates the workdir command
func newWorkdirCmd() *cobra.Command {
	var (
		prefer   string
		fallback string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "workdir",
		Short: "Provision a temporary working directory for a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			path, err := workdir.Provision(ctx, prefer, fallback)
			if err != nil {
				return err
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "working directory created: %s\n", path)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefer, "prefer", os.TempDir(), "preferred scratch prefix")
	cmd.Flags().StringVar(&fallback, "fallback", "/tmp", "fallback prefix when the preferred one fails")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")

	return cmd
}
