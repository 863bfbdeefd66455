package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/internal/parquet"
	"github.com/huangsam/timeslot/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSchedule outputs a generated schedule, dispatching based on the
// output format configured. Every generated slot is written, occupied or
// not; free slots carry the AVAILABLE placeholder.
func WriteSchedule(assignment schema.Assignment, report schema.CapacityReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScheduleJSON(assignment, report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScheduleCSV(assignment, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertSchedule(assignment, cfg.SlotMinutes)
		if err := parquet.WriteScheduleParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScheduleTable(assignment, report, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScheduleTable generates and writes the human-readable table plus the
// per-day summary footer.
func writeScheduleTable(assignment schema.Assignment, report schema.CapacityReport, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define headers
	table.Header([]string{"Day", "Start", "End", "Participant", "Duration"})

	// 2. Right-align the numeric-ish columns for a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate rows
	maxIDWidth := getMaxTableIDWidth(cfg)
	var data [][]string
	for _, slot := range assignment.Schedule {
		// Truncate the raw id before colorizing so ANSI codes stay intact.
		display := slot
		display.Occupant = contract.TruncateID(slot.Occupant, maxIDWidth)
		status := contract.GetPlainStatus(display)
		if cfg.UseColors {
			status = contract.GetColorStatus(display)
		}
		data = append(data, []string{
			strconv.Itoa(slot.Day),
			slot.Start.String(),
			slot.End.String(),
			status,
			strconv.Itoa(cfg.SlotMinutes),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Per-day totals and run summary
	for _, day := range scheduleDays(assignment.Schedule) {
		daySlots := assignment.Schedule.DaySlots(day)
		if _, err := fmt.Fprintf(writer, "Day %d: %d slots, %d assigned\n", day, len(daySlots), daySlots.AssignedCount()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Assigned %d of %d participants across %d slots (surplus: %d)\n",
		assignment.Schedule.AssignedCount(), report.ParticipantsRequested, report.SlotsAvailable, report.Surplus()); err != nil {
		return err
	}
	if len(assignment.Unplaced) > 0 {
		if _, err := fmt.Fprintf(writer, "Unplaced participants: %s\n", strings.Join(assignment.Unplaced, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Schedule generated in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeScheduleCSV handles opening the file and writing the CSV export:
// one record per generated slot, unoccupied slots included.
func writeScheduleCSV(assignment schema.Assignment, cfg *contract.Config) error {
	header := []string{"Day", "Start Time", "End Time", "Participant", "Duration (minutes)"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, slot := range assignment.Schedule {
				rec := []string{
					fmt.Sprintf("Day %d", slot.Day),
					slot.Start.String(),
					slot.End.String(),
					contract.GetPlainStatus(slot),
					strconv.Itoa(cfg.SlotMinutes),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeScheduleJSON writes the schedule, capacity report and unplaced list
// as one JSON document.
func writeScheduleJSON(assignment schema.Assignment, report schema.CapacityReport, cfg *contract.Config) error {
	type JSONSchedule struct {
		Capacity schema.CapacityReport `json:"capacity"`
		Schedule schema.Schedule       `json:"schedule"`
		Unplaced []string              `json:"unplaced,omitempty"`
	}
	out := JSONSchedule{
		Capacity: report,
		Schedule: assignment.Schedule,
		Unplaced: assignment.Unplaced,
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, out)
	}, "Wrote JSON")
}

// scheduleDays returns the distinct days of a schedule in slot order.
func scheduleDays(s schema.Schedule) []int {
	var days []int
	seen := make(map[int]bool)
	for _, slot := range s {
		if !seen[slot.Day] {
			seen[slot.Day] = true
			days = append(days, slot.Day)
		}
	}
	return days
}
