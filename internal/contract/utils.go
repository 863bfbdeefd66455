package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/timeslot/schema"
)

// Color variables for console output.
var (
	InfoColor = color.New(color.FgCyan)              // informational notices (window adjustments)
	WarnColor = color.New(color.FgYellow)            // recoverable problems (skipped lines, shortfall)
	OkColor   = color.New(color.FgGreen)             // success signals
	BadColor  = color.New(color.FgRed, color.Bold)   // hard failures
	FreeColor = color.New(color.FgYellow)            // unoccupied slot label
	BusyColor = color.New(color.FgGreen, color.Bold) // occupied slot label
)

// ProcessAndValidate parses and validates the raw input, populating the
// final Config. All configuration errors fail here, before any slot is
// generated.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// 1. Scalar checks with descriptive messages.
	if input.Participants < 1 {
		return fmt.Errorf("participants must be >= 1, got %d", input.Participants)
	}
	if input.SlotMinutes < 1 {
		return fmt.Errorf("slot duration must be positive, got %d", input.SlotMinutes)
	}
	if input.BreakMinutes < 0 {
		return fmt.Errorf("break duration must be non-negative, got %d", input.BreakMinutes)
	}

	cfg.Participants = input.Participants
	cfg.RosterFile = input.RosterFile
	cfg.SlotMinutes = input.SlotMinutes
	cfg.BreakMinutes = input.BreakMinutes
	cfg.ConstraintsFile = input.Constraints
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Strict = input.Strict

	// 2. Output mode.
	mode := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[mode]; !ok {
		return fmt.Errorf("invalid output mode %q (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = mode

	// 3. Color toggle.
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return err
	}
	cfg.UseColors = useColors
	color.NoColor = !useColors

	// 4. Lunch exclusion window.
	lunch, err := parseLunchSpec(input.Lunch)
	if err != nil {
		return err
	}
	cfg.Lunch = lunch

	// 5. Day schedule: explicit intervals win over uniform hours. Lunch
	// splitting happens later, at scheduler construction.
	var raw schema.DaySchedule
	if strings.TrimSpace(input.Intervals) != "" {
		raw, err = ParseIntervalsSpec(input.Intervals)
	} else {
		raw, err = schema.UniformDaySchedule(input.Days, input.DayStart, input.DayEnd)
	}
	if err != nil {
		return err
	}
	cfg.DaySchedule = raw

	return nil
}

// parseLunchSpec parses the lunch flag value. Empty and "none" disable
// splitting entirely.
func parseLunchSpec(spec string) (*schema.TimeWindow, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, LunchDisabled) {
		return nil, nil
	}
	w, err := schema.ParseWindow(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid lunch window: %w", err)
	}
	return &w, nil
}

// ParseIntervalsSpec parses the explicit per-day interval spec, e.g.
// "1=9-12,13-16;2=10:00-15:00". Day entries are separated by ';', windows
// within a day by ','.
func ParseIntervalsSpec(spec string) (schema.DaySchedule, error) {
	ds := make(schema.DaySchedule)
	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		dayStr, windowsStr, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("interval entry %q must look like day=windows (e.g. 1=9-12,13-16)", entry)
		}
		days, err := schema.ParseDaySet(dayStr)
		if err != nil {
			return nil, err
		}
		if len(days) != 1 {
			return nil, fmt.Errorf("interval entry %q must name a single day", entry)
		}
		day := days[0]
		if _, exists := ds[day]; exists {
			return nil, fmt.Errorf("day %d appears more than once in intervals", day)
		}
		windows, err := schema.ParseWindowList(windowsStr, ",")
		if err != nil {
			return nil, err
		}
		ds[day] = windows
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("no day intervals found in %q", spec)
	}
	return ds, nil
}

// GetPlainStatus returns the occupant id, or the AVAILABLE placeholder for a
// free slot. This is the core logic used for CSV, JSON and table printing.
func GetPlainStatus(slot schema.Slot) string {
	if slot.Occupied() {
		return slot.Occupant
	}
	return schema.FreeSlotLabel
}

// GetColorStatus returns a colored status label for console output (table).
func GetColorStatus(slot schema.Slot) string {
	if slot.Occupied() {
		return BusyColor.Sprint(slot.Occupant)
	}
	return FreeColor.Sprint(schema.FreeSlotLabel)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogInfo logs an informational notice to stderr.
func LogInfo(msg string) {
	_, _ = InfoColor.Fprintf(os.Stderr, "Info %s\n", msg)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = WarnColor.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
		return
	}
	_, _ = WarnColor.Fprintf(os.Stderr, "Warn %s\n", msg)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// TruncateID truncates a participant id to a maximum width with ellipsis
// suffix. Requires maxWidth > 3 so there is room for both content and "...".
func TruncateID(id string, maxWidth int) string {
	runes := []rune(id)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return id
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
