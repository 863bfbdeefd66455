package cmd

import (
	"os"

	"github.com/huangsam/timeslot/internal/prompt"
	"github.com/spf13/cobra"
)

// wizardCmd runs the interactive scheduling session.
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a schedule interactively.",
	Long: `Walk through scheduling step by step: participant count, slot and break
durations, days and their time intervals. The wizard previews capacity before
generating, asks for confirmation on a shortfall, and exports the result as
CSV.

Flags and config file values still supply the lunch window and the
constraints file; everything else is asked interactively.`,
	PreRunE: serveSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return prompt.NewWizard(os.Stdin, os.Stdout).Run(rootCtx, cfg)
	},
}
