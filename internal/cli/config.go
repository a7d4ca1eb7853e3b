package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqpipes.dev/seqpipes/internal/config"
	"seqpipes.dev/seqpipes/internal/output"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect workflow configuration files",
		Long: `Inspect workflow configuration files.

Examples:
  seqpipes config show defaults.yaml
  seqpipes config diff run.yaml defaults.yaml`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigDiffCmd())

	return cmd
}

// newConfigShowCmd creates the config show command
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a configuration file with reserved keys stripped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatMapping("Config", args[0], m))
			return nil
		},
	}
}

// newConfigDiffCmd creates the config diff command
func newConfigDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file> <base>",
		Short: "Show the keys of <file> that differ from <base>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := config.Load(args[0])
			if err != nil {
				return err
			}
			b, err := config.Load(args[1])
			if err != nil {
				return err
			}
			diff := config.Diff(a, b)
			if len(diff) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no differences")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatMapping("Config diff", "", diff))
			return nil
		},
	}
}
