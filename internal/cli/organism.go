package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqpipes.dev/seqpipes/internal/organisms"
	"seqpipes.dev/seqpipes/internal/output"
)

// newOrganismCmd creates the organism command
func newOrganismCmd() *cobra.Command {
	var maindir string

	cmd := &cobra.Command{
		Use:   "organism <name | file>",
		Short: "Resolve and print an organism's genome configuration",
		Long: `Resolve and print an organism's genome configuration.

A registered organism name is looked up under <maindir>/shared/organisms/;
anything else is treated as a path to a user-supplied organism YAML file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, path, err := organisms.Resolve(args[0], maindir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatMapping("Genome", path, m))
			return nil
		},
	}

	defaultMaindir := os.Getenv("SEQPIPES_MAINDIR")
	if defaultMaindir == "" {
		defaultMaindir = "."
	}
	cmd.Flags().StringVar(&maindir, "maindir", defaultMaindir, "seqpipes installation directory")

	return cmd
}
