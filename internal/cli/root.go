// Package cli wires the seqpipes commands together.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqpipes.dev/seqpipes/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seqpipes",
		Short: "Setup helpers for the seqpipes sequencing workflows",
		Long: `Setup helpers for the seqpipes sequencing workflows.

seqpipes inspects FASTQ inputs, resolves genome configuration and prepares
working directories before a workflow run is dispatched.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.InitColors()
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print resolved configuration while running")
	rootCmd.PersistentFlags().String("log-file", "", "append a timestamped debug log to this file (rotated)")

	// Add subcommands
	rootCmd.AddCommand(newSamplesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newOrganismCmd())
	rootCmd.AddCommand(newWorkdirCmd())
	rootCmd.AddCommand(newSweepCmd())

	return rootCmd
}
