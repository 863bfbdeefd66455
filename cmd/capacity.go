package cmd

import (
	"github.com/huangsam/timeslot/core"
	"github.com/huangsam/timeslot/internal/contract"
	"github.com/spf13/cobra"
)

// capacityCmd runs only the supply-vs-demand pre-check.
var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Check slot supply against participant demand.",
	Long: `Count how many slots the configured windows can hold and compare that
against the requested participant count, without generating a schedule.

A shortfall is reported, not treated as an error, so the numbers can feed
planning decisions: shorter slots, more intervals, or more days.

Examples:
  # Will two 9-16 days fit 80 participants at 10 minutes each?
  timeslot capacity -p 80 -d 2

  # Same check against explicit intervals, as JSON
  timeslot capacity -p 80 -i '1=9-12,13-16;2=10-15' --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCapacity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot check capacity", err)
		}
	},
}
