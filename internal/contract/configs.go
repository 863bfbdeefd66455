// Package contract has the validated runtime configuration, the raw input
// shapes that viper unmarshals into, and the parsing that bridges the two.
package contract

import (
	"maps"
	"slices"

	"github.com/huangsam/timeslot/schema"
)

// Default values for configuration.
const (
	DefaultSlotMinutes     = 10
	DefaultBreakMinutes    = 0
	DefaultDays            = 1
	DefaultDayStartHour    = 9
	DefaultDayEndHour      = 16
	DefaultLunchSpec       = "12:00-13:00"
	DefaultConstraintsFile = "participant_constraints.txt"
)

// LunchDisabled is the sentinel spec that turns off automatic lunch
// splitting of raw day windows.
const LunchDisabled = "none"

// Config holds the runtime configuration for one scheduling run.
// This struct remains the "final, validated" config.
type Config struct {
	Participants int
	RosterFile   string
	SlotMinutes  int
	BreakMinutes int

	// DaySchedule holds the raw per-day windows: uniform hours already
	// expanded to one window per day, but not yet split around the lunch
	// exclusion. Splitting happens once, at scheduler construction.
	DaySchedule schema.DaySchedule

	// Lunch is the exclusion window applied to raw input windows, or nil
	// when splitting is disabled.
	Lunch *schema.TimeWindow

	ConstraintsFile string

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	Strict     bool // Abort on capacity shortfall instead of warning
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Participants int    `mapstructure:"participants"`
	RosterFile   string `mapstructure:"roster-file"`
	SlotMinutes  int    `mapstructure:"slot-duration"`
	BreakMinutes int    `mapstructure:"break-duration"`
	Days         int    `mapstructure:"days"`
	DayStart     int    `mapstructure:"day-start"`
	DayEnd       int    `mapstructure:"day-end"`
	Intervals    string `mapstructure:"intervals"`
	Lunch        string `mapstructure:"lunch"`
	Constraints  string `mapstructure:"constraints"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	Strict       bool   `mapstructure:"strict"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.DaySchedule != nil {
		clone.DaySchedule = make(schema.DaySchedule, len(c.DaySchedule))
		for day, windows := range c.DaySchedule {
			clone.DaySchedule[day] = slices.Clone(windows)
		}
	}
	if c.Lunch != nil {
		lunch := *c.Lunch
		clone.Lunch = &lunch
	}
	return &clone
}

// ConstraintsFor returns an independent copy of a constraint map. The
// scheduler copies caller-supplied constraints through it so the two sides
// share no state. A nil map yields an empty copy.
func ConstraintsFor(constraints map[string]schema.ParticipantConstraint) map[string]schema.ParticipantConstraint {
	out := make(map[string]schema.ParticipantConstraint, len(constraints))
	maps.Copy(out, constraints)
	return out
}
