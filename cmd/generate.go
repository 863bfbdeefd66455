package cmd

import (
	"github.com/huangsam/timeslot/core"
	"github.com/huangsam/timeslot/internal/contract"
	"github.com/spf13/cobra"
)

// generateCmd builds the slot grid and assigns participants to it.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a presentation schedule.",
	Long: `Turn per-day availability windows into fixed-duration slots and assign
participants to them.

Slots are cut from each window front to back, separated by the configured
break; a window keeps only the slots that fit entirely inside it. Day windows
are split around the lunch exclusion before slots are cut. Participants with
constraints are placed first, in roster order; everyone left is placed into
the remaining free slots, also in order.

Participant ids come from the roster file when given, otherwise generated
names (Participant_1, Participant_2, ...) are used. Constraints are read from
a plain text file, one participant per line:

  # id,days,windows
  Alice,1,
  Bob,1-2,10:00-12:00
  Carol,,09:00-11:00;14:00-16:00

Examples:
  # 37 participants, two days of 9-16 with the default lunch split
  timeslot generate -p 37 -d 2

  # Explicit intervals per day, 15-minute slots with 5-minute breaks
  timeslot generate -p 20 -i '1=9-12,13-16;2=10-15' -s 15 -b 5

  # Export every slot, assigned or free, to CSV
  timeslot generate -p 37 -d 2 --output csv --output-file schedule.csv

  # Fail instead of leaving participants unplaced
  timeslot generate -p 80 -d 1 --strict`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot generate schedule", err)
		}
	},
}
