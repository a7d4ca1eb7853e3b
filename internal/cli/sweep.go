package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"seqpipes.dev/seqpipes/internal/logsweep"
	"seqpipes.dev/seqpipes/internal/tui"
)

// newSweepCmd creates the sweep command
func newSweepCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "sweep <workflow-output-dir>",
		Short: "Delete empty log files left behind by a workflow run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete empty log files under %s?", args[0]),
					Default: true,
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return fmt.Errorf("canceled")
				}
				if !confirmed {
					return nil
				}
			}

			logFile, _ := cmd.Flags().GetString("log-file")
			splog, err := tui.NewSplogWithFile(logFile)
			if err != nil {
				return err
			}
			defer splog.Close()

			removed, err := logsweep.Sweep(args[0])
			for _, path := range removed {
				splog.Debug("removed %s", path)
			}
			if err != nil {
				return err
			}
			splog.Info("removed %d empty log files", len(removed))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
