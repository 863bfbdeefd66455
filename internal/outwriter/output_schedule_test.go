package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssignment() (schema.Assignment, schema.CapacityReport) {
	assignment := schema.Assignment{
		Schedule: schema.Schedule{
			{Day: 1, Start: 9 * 60, End: 9*60 + 10, Occupant: "Alice"},
			{Day: 1, Start: 9*60 + 10, End: 9*60 + 20, Occupant: "Bob"},
			{Day: 1, Start: 9*60 + 20, End: 9*60 + 30},
			{Day: 2, Start: 9 * 60, End: 9*60 + 10, Occupant: "Carol"},
		},
	}
	report := schema.CapacityReport{SlotsAvailable: 4, ParticipantsRequested: 3}
	return assignment, report
}

// TestWriteScheduleTable checks the human-readable output: rows, per-day
// footers and totals.
func TestWriteScheduleTable(t *testing.T) {
	assignment, report := sampleAssignment()
	cfg := &contract.Config{SlotMinutes: 10, Width: 100, UseColors: false}

	var buf bytes.Buffer
	require.NoError(t, writeScheduleTable(assignment, report, cfg, 5*time.Millisecond, &buf))
	out := buf.String()

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "09:20")
	assert.Contains(t, out, schema.FreeSlotLabel)
	assert.Contains(t, out, "Day 1: 3 slots, 2 assigned")
	assert.Contains(t, out, "Day 2: 1 slots, 1 assigned")
	assert.Contains(t, out, "Assigned 3 of 3 participants across 4 slots (surplus: 1)")
	assert.NotContains(t, out, "Unplaced")
}

func TestWriteScheduleTableUnplaced(t *testing.T) {
	assignment, report := sampleAssignment()
	assignment.Unplaced = []string{"Dave", "Eve"}
	cfg := &contract.Config{SlotMinutes: 10, Width: 100}

	var buf bytes.Buffer
	require.NoError(t, writeScheduleTable(assignment, report, cfg, time.Millisecond, &buf))
	assert.Contains(t, buf.String(), "Unplaced participants: Dave, Eve")
}

// TestWriteScheduleCSV verifies the CSV export shape: header plus one record
// per slot, free slots included.
func TestWriteScheduleCSV(t *testing.T) {
	assignment, report := sampleAssignment()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	cfg := &contract.Config{
		SlotMinutes: 10,
		Output:      schema.CSVOut,
		OutputFile:  path,
	}

	require.NoError(t, WriteSchedule(assignment, report, cfg, time.Millisecond))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, []string{"Day", "Start Time", "End Time", "Participant", "Duration (minutes)"}, records[0])
	assert.Equal(t, []string{"Day 1", "09:00", "09:10", "Alice", "10"}, records[1])
	assert.Equal(t, []string{"Day 1", "09:20", "09:30", schema.FreeSlotLabel, "10"}, records[3])
	assert.Equal(t, []string{"Day 2", "09:00", "09:10", "Carol", "10"}, records[4])
}

// TestWriteScheduleJSON verifies the JSON export document.
func TestWriteScheduleJSON(t *testing.T) {
	assignment, report := sampleAssignment()
	assignment.Unplaced = []string{"Dave"}
	path := filepath.Join(t.TempDir(), "schedule.json")
	cfg := &contract.Config{
		SlotMinutes: 10,
		Output:      schema.JSONOut,
		OutputFile:  path,
	}

	require.NoError(t, WriteSchedule(assignment, report, cfg, time.Millisecond))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Capacity schema.CapacityReport `json:"capacity"`
		Schedule []struct {
			Day      int    `json:"day"`
			Start    string `json:"start"`
			Occupant string `json:"occupant"`
		} `json:"schedule"`
		Unplaced []string `json:"unplaced"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, 4, doc.Capacity.SlotsAvailable)
	require.Len(t, doc.Schedule, 4)
	assert.Equal(t, "09:00", doc.Schedule[0].Start)
	assert.Equal(t, "Alice", doc.Schedule[0].Occupant)
	assert.Equal(t, []string{"Dave"}, doc.Unplaced)
}

func TestWriteScheduleParquetRequiresFile(t *testing.T) {
	assignment, report := sampleAssignment()
	cfg := &contract.Config{SlotMinutes: 10, Output: schema.ParquetOut}

	err := WriteSchedule(assignment, report, cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

func TestScheduleDays(t *testing.T) {
	assignment, _ := sampleAssignment()
	assert.Equal(t, []int{1, 2}, scheduleDays(assignment.Schedule))
	assert.Empty(t, scheduleDays(nil))
}

// TestGetMaxTableIDWidth checks the width override and its clamping.
func TestGetMaxTableIDWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"narrow terminal clamps to minimum", 40, 12},
		{"mid terminal uses available space", 75, 30},
		{"wide terminal clamps to maximum", 200, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, getMaxTableIDWidth(cfg))
		})
	}
}

func TestTableOutputFreeLabelWhenColored(t *testing.T) {
	// Color sequences must wrap the label, not be cut by truncation.
	assignment, report := sampleAssignment()
	cfg := &contract.Config{SlotMinutes: 10, Width: 100, UseColors: true}

	var buf bytes.Buffer
	require.NoError(t, writeScheduleTable(assignment, report, cfg, time.Millisecond, &buf))
	assert.True(t, strings.Contains(buf.String(), schema.FreeSlotLabel))
}
