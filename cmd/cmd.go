// Package cmd defines the command-line interface for timeslot.
package cmd

import (
	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("participants", "p", 0, "Number of participants to schedule")
	rootCmd.PersistentFlags().String("roster-file", "", "Optional file with one participant id per line")
	rootCmd.PersistentFlags().IntP("slot-duration", "s", contract.DefaultSlotMinutes, "Slot duration in minutes")
	rootCmd.PersistentFlags().IntP("break-duration", "b", contract.DefaultBreakMinutes, "Break between consecutive slots in minutes")
	rootCmd.PersistentFlags().IntP("days", "d", contract.DefaultDays, "Number of days (uniform-hours mode)")
	rootCmd.PersistentFlags().Int("day-start", contract.DefaultDayStartHour, "Daily start hour, 24-hour format (uniform-hours mode)")
	rootCmd.PersistentFlags().Int("day-end", contract.DefaultDayEndHour, "Daily end hour, 24-hour format (uniform-hours mode)")
	rootCmd.PersistentFlags().StringP("intervals", "i", "", "Explicit per-day intervals, e.g. '1=9-12,13-16;2=10-15' (overrides uniform hours)")
	rootCmd.PersistentFlags().String("lunch", contract.DefaultLunchSpec, "Lunch window excluded from every day, or 'none' to disable")
	rootCmd.PersistentFlags().StringP("constraints", "c", contract.DefaultConstraintsFile, "Path to the participant constraints file")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("strict", false, "Abort on capacity shortfall instead of leaving participants unplaced")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
