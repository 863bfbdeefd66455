package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/internal/outwriter"
	"github.com/huangsam/timeslot/schema"
)

// NewSchedulerFromConfig builds a Scheduler from validated configuration,
// splitting the raw day windows around the lunch exclusion with one
// user-visible notice per adjustment.
func NewSchedulerFromConfig(cfg *contract.Config) (*Scheduler, error) {
	normalized := NormalizeDaySchedule(cfg.DaySchedule, cfg.Lunch, contract.LogInfo)
	return NewScheduler(normalized, cfg.SlotMinutes, cfg.BreakMinutes)
}

// GetScheduleResults runs the full pipeline (constraints, roster, capacity
// pre-check, assignment) and returns the outcome as data. It is shared by
// the CLI entry points and the MCP tool handlers.
func GetScheduleResults(cfg *contract.Config) (schema.Assignment, schema.CapacityReport, error) {
	scheduler, err := NewSchedulerFromConfig(cfg)
	if err != nil {
		return schema.Assignment{}, schema.CapacityReport{}, err
	}

	constraints, err := contract.LoadConstraints(cfg.ConstraintsFile)
	if err != nil {
		return schema.Assignment{}, schema.CapacityReport{}, err
	}
	scheduler.SetConstraints(constraints)

	roster, err := contract.LoadRoster(cfg.RosterFile, cfg.Participants)
	if err != nil {
		return schema.Assignment{}, schema.CapacityReport{}, err
	}

	report, err := scheduler.Capacity(len(roster))
	if err != nil {
		return schema.Assignment{}, schema.CapacityReport{}, err
	}
	if !report.Sufficient() {
		if cfg.Strict {
			return schema.Assignment{}, report, fmt.Errorf(
				"capacity shortfall: need %d slots, have %d (short %d)",
				report.ParticipantsRequested, report.SlotsAvailable, report.Shortfall)
		}
		contract.LogWarn(fmt.Sprintf(
			"not enough slots: need %d, have %d (short %d); %d participant(s) will stay unplaced",
			report.ParticipantsRequested, report.SlotsAvailable, report.Shortfall, report.Shortfall), nil)
	}

	assignment, err := scheduler.Generate(roster)
	if err != nil {
		return schema.Assignment{}, report, err
	}
	return assignment, report, nil
}

// ExecuteGenerate runs the scheduling pipeline and writes the schedule using
// the configured output format. It serves as the main entry point for the
// 'generate' command.
func ExecuteGenerate(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	assignment, report, err := GetScheduleResults(cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteSchedule(assignment, report, cfg, duration)
}

// ExecuteCapacity runs only the supply-vs-demand pre-check and prints the
// capacity report. It serves as the main entry point for the 'capacity'
// command.
func ExecuteCapacity(_ context.Context, cfg *contract.Config) error {
	scheduler, err := NewSchedulerFromConfig(cfg)
	if err != nil {
		return err
	}
	report, err := scheduler.Capacity(cfg.Participants)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCapacity(report, cfg)
}
