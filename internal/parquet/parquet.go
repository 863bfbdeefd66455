// Package parquet provides data structures and functions for exporting
// generated schedules to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/timeslot/schema"
	"github.com/parquet-go/parquet-go"
)

// ScheduleSlot represents one generated slot in a schedule export, occupied
// or not. One row is written per slot.
type ScheduleSlot struct {
	// Day is the 1-based day identifier the slot belongs to
	Day int32 `parquet:"day,snappy"`

	// StartTime is the slot start as HH:MM
	StartTime string `parquet:"start_time,snappy"`

	// EndTime is the slot end as HH:MM
	EndTime string `parquet:"end_time,snappy"`

	// Participant is the occupant id (nullable; null means the slot is free)
	Participant *string `parquet:"participant,optional,snappy"`

	// DurationMinutes is the configured slot duration
	DurationMinutes int32 `parquet:"duration_minutes,snappy"`

	// GeneratedAt is when the schedule export was produced
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// WriteScheduleParquet writes a slice of ScheduleSlot structs to a Parquet
// file. The schema is derived from the struct tags.
func WriteScheduleParquet(rows []ScheduleSlot, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ScheduleSlot](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSchedule converts a schema.Assignment to ScheduleSlot rows for
// Parquet export.
func ConvertSchedule(assignment schema.Assignment, slotMinutes int) []ScheduleSlot {
	now := time.Now()
	rows := make([]ScheduleSlot, len(assignment.Schedule))
	for i, slot := range assignment.Schedule {
		var participant *string
		if slot.Occupied() {
			occupant := slot.Occupant
			participant = &occupant
		}
		rows[i] = ScheduleSlot{
			Day:             int32(slot.Day),
			StartTime:       slot.Start.String(),
			EndTime:         slot.End.String(),
			Participant:     participant,
			DurationMinutes: int32(slotMinutes),
			GeneratedAt:     now,
		}
	}
	return rows
}
