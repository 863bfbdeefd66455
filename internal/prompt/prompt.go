// Package prompt implements the interactive wizard that collects scheduling
// inputs from the terminal, confirms capacity, and exports the result.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/timeslot/core"
	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/internal/outwriter"
	"github.com/huangsam/timeslot/schema"
)

// DefaultExportFile is the CSV filename offered when the user presses Enter
// at the export prompt.
const DefaultExportFile = "presentation_schedule.csv"

// Wizard drives one interactive scheduling session. Input and output streams
// are injected so the flow can be tested without a terminal.
type Wizard struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewWizard returns a Wizard reading answers from r and writing prompts to w.
func NewWizard(r io.Reader, w io.Writer) *Wizard {
	return &Wizard{in: bufio.NewScanner(r), out: w}
}

// Run walks the user through configuration, previews capacity, and writes the
// schedule as CSV. The provided config supplies defaults (lunch window,
// constraints file); the wizard fills in the rest.
func (wz *Wizard) Run(_ context.Context, cfg *contract.Config) error {
	fmt.Fprintln(wz.out, "=== Presentation Timeslot Scheduler ===")
	fmt.Fprintln(wz.out)

	// 1. Collect scalar inputs.
	participants, err := wz.askInt("Number of participants to schedule: ", func(n int) error {
		if n < 1 {
			return errors.New("please enter a positive number")
		}
		return nil
	})
	if err != nil {
		return err
	}
	slotMinutes, err := wz.askInt("Slot duration in minutes: ", func(n int) error {
		if n < 1 {
			return errors.New("please enter a positive number")
		}
		return nil
	})
	if err != nil {
		return err
	}
	breakMinutes, err := wz.askInt("Break between slots in minutes (0 for none): ", func(n int) error {
		if n < 0 {
			return errors.New("please enter a non-negative number")
		}
		return nil
	})
	if err != nil {
		return err
	}
	days, err := wz.askInt("Number of presentation days: ", func(n int) error {
		if n < 1 {
			return errors.New("please enter a positive number")
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 2. Collect per-day windows.
	daySchedule := make(schema.DaySchedule, days)
	for day := 1; day <= days; day++ {
		fmt.Fprintf(wz.out, "\n--- Day %d ---\n", day)
		fmt.Fprintln(wz.out, "Enter time intervals, e.g. 9-16, 09:00-16:00 or 9-12,13-16.")
		if cfg.Lunch != nil {
			fmt.Fprintf(wz.out, "Intervals are split around lunch (%s) automatically.\n", cfg.Lunch)
		}
		windows, err := wz.askWindows(fmt.Sprintf("Day %d intervals: ", day))
		if err != nil {
			return err
		}
		daySchedule[day] = windows
	}

	cfg.Participants = participants
	cfg.SlotMinutes = slotMinutes
	cfg.BreakMinutes = breakMinutes
	cfg.DaySchedule = daySchedule

	// 3. Echo the configuration before doing any work.
	fmt.Fprintln(wz.out, "\n=== Configuration ===")
	fmt.Fprintf(wz.out, "Participants:   %d\n", cfg.Participants)
	fmt.Fprintf(wz.out, "Slot duration:  %d minutes\n", cfg.SlotMinutes)
	fmt.Fprintf(wz.out, "Break duration: %d minutes\n", cfg.BreakMinutes)
	for _, day := range cfg.DaySchedule.Days() {
		var parts []string
		for _, w := range cfg.DaySchedule[day] {
			parts = append(parts, w.String())
		}
		fmt.Fprintf(wz.out, "Day %d: %s\n", day, strings.Join(parts, ", "))
	}

	// 4. Capacity preview with a chance to back out.
	scheduler, err := core.NewSchedulerFromConfig(cfg)
	if err != nil {
		return err
	}
	report, err := scheduler.Capacity(cfg.Participants)
	if err != nil {
		return err
	}
	fmt.Fprintf(wz.out, "\nTotal available slots: %d\n", report.SlotsAvailable)
	if report.Sufficient() {
		fmt.Fprintf(wz.out, "%s %d extra slot(s) available\n",
			contract.OkColor.Sprint("Sufficient capacity:"), report.Surplus())
	} else {
		fmt.Fprintf(wz.out, "%s need %d, have %d (short %d)\n",
			contract.BadColor.Sprint("Not enough slots:"),
			report.ParticipantsRequested, report.SlotsAvailable, report.Shortfall)
		fmt.Fprintln(wz.out, "Consider shorter slots, more intervals, or more days.")
		proceed, err := wz.askYesNo("Proceed anyway? (y/N): ")
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(wz.out, "Scheduler cancelled.")
			return nil
		}
	}

	// 5. Generate and export.
	constraints, err := contract.LoadConstraints(cfg.ConstraintsFile)
	if err != nil {
		return err
	}
	scheduler.SetConstraints(constraints)

	roster, err := contract.LoadRoster(cfg.RosterFile, cfg.Participants)
	if err != nil {
		return err
	}

	start := time.Now()
	assignment, err := scheduler.Generate(roster)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	filename, err := wz.askLine(fmt.Sprintf("CSV filename (press Enter for %q): ", DefaultExportFile))
	if err != nil {
		return err
	}
	if filename == "" {
		filename = DefaultExportFile
	}

	cfg.Output = schema.CSVOut
	cfg.OutputFile = filename
	if err := outwriter.WriteSchedule(assignment, report, cfg, duration); err != nil {
		return err
	}

	fmt.Fprintf(wz.out, "%s exported to %s\n", contract.OkColor.Sprint("Schedule"), filename)
	if len(assignment.Unplaced) > 0 {
		fmt.Fprintf(wz.out, "Unplaced participants: %s\n", strings.Join(assignment.Unplaced, ", "))
	}
	return nil
}

// askLine reads one trimmed line of input.
func (wz *Wizard) askLine(prompt string) (string, error) {
	fmt.Fprint(wz.out, prompt)
	if !wz.in.Scan() {
		if err := wz.in.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(wz.in.Text()), nil
}

// askInt keeps prompting until the answer parses and passes validation.
func (wz *Wizard) askInt(prompt string, validate func(int) error) (int, error) {
	for {
		line, err := wz.askLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(wz.out, "Please enter a valid number.")
			continue
		}
		if err := validate(n); err != nil {
			fmt.Fprintf(wz.out, "%v.\n", err)
			continue
		}
		return n, nil
	}
}

// askWindows keeps prompting until the answer parses as a comma-separated
// list of time windows.
func (wz *Wizard) askWindows(prompt string) ([]schema.TimeWindow, error) {
	for {
		line, err := wz.askLine(prompt)
		if err != nil {
			return nil, err
		}
		windows, err := schema.ParseWindowList(line, ",")
		if err != nil {
			fmt.Fprintf(wz.out, "Invalid intervals: %v. Please try again.\n", err)
			continue
		}
		return windows, nil
	}
}

// askYesNo reads a yes/no answer, defaulting to no.
func (wz *Wizard) askYesNo(prompt string) (bool, error) {
	line, err := wz.askLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
