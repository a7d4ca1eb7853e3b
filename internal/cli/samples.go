package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqpipes.dev/seqpipes/internal/fastq"
	"seqpipes.dev/seqpipes/internal/output"
)

// newSamplesCmd creates the samples command
func newSamplesCmd() *cobra.Command {
	var (
		ext   string
		reads []string
	)

	cmd := &cobra.Command{
		Use:   "samples <dir | file...>",
		Short: "Infer sample names and paired-end status from FASTQ files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infiles, err := collectInputs(args, ext)
			if err != nil {
				return err
			}
			if len(infiles) == 0 {
				return fmt.Errorf("no %s files found", ext)
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "%d input files\n", len(infiles))
			}

			for _, name := range fastq.SampleNames(infiles, ext, reads) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			paired := fastq.IsPaired(infiles, ext, reads)
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatPairing(paired))
			return nil
		},
	}

	cmd.Flags().StringVar(&ext, "ext", ".fastq.gz", "FASTQ file extension")
	cmd.Flags().StringSliceVar(&reads, "reads", []string{"_R1", "_R2"}, "paired-end read suffixes")

	return cmd
}

// collectInputs expands a single directory argument into the FASTQ files
// below it; explicit file arguments are passed through untouched.
func collectInputs(args []string, ext string) ([]string, error) {
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot read input %s: %w", args[0], err)
		}
		if info.IsDir() {
			return fastq.Discover(args[0], ext)
		}
	}
	return args, nil
}
