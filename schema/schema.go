// Package schema has configs, models and shared helpers for all parts of timeslot.
package schema

import (
	"fmt"
	"sort"
)

// Clock is a time of day expressed as minutes since midnight.
// The valid range is [0, MinutesPerDay]; the upper bound (24:00) is only
// meaningful as the exclusive end of a window.
type Clock int

// String renders the clock value as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// MarshalJSON renders the clock value as a quoted HH:MM string.
func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// TimeWindow is a contiguous half-open interval of time-of-day [Start, End).
// Immutable once constructed; Start < End always holds for validated windows.
type TimeWindow struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

// NewTimeWindow validates and constructs a TimeWindow.
// It rejects windows where start >= end and windows outside [00:00, 24:00].
func NewTimeWindow(start, end Clock) (TimeWindow, error) {
	if start < 0 || end > MinutesPerDay {
		return TimeWindow{}, fmt.Errorf("window %s-%s is outside the day bounds", start, end)
	}
	if start >= end {
		return TimeWindow{}, fmt.Errorf("window start %s must be before end %s", start, end)
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Minutes returns the window length in minutes.
func (w TimeWindow) Minutes() int {
	return int(w.End - w.Start)
}

// String renders the window as HH:MM-HH:MM.
func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// DaySchedule maps a day identifier (>= 1) to the ordered, disjoint windows
// available on that day. Windows are consumed in the given order per day;
// overlap between a caller's windows is not detected or merged.
type DaySchedule map[int][]TimeWindow

// Days returns the day identifiers of the schedule in ascending order.
// Slot generation always walks days in this order so output is deterministic.
func (ds DaySchedule) Days() []int {
	days := make([]int, 0, len(ds))
	for day := range ds {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Slot is a fixed-duration, single-day interval eligible for one occupant.
// Occupant is empty until the assignor fills it; assigned slots are never
// mutated again, only exported.
type Slot struct {
	Day      int    `json:"day"`
	Start    Clock  `json:"start"`
	End      Clock  `json:"end"`
	Occupant string `json:"occupant,omitempty"`
}

// Occupied reports whether the slot has an occupant.
func (s Slot) Occupied() bool {
	return s.Occupant != ""
}

// String renders the slot as "Day N: HH:MM-HH:MM".
func (s Slot) String() string {
	return fmt.Sprintf("Day %d: %s-%s", s.Day, s.Start, s.End)
}

// ParticipantConstraint restricts which days and/or time windows a
// participant may occupy. A nil Days or Windows slice means the participant
// is unconstrained on that axis. Read-only during assignment.
type ParticipantConstraint struct {
	ID      string       `json:"id"`
	Days    []int        `json:"days,omitempty"`
	Windows []TimeWindow `json:"windows,omitempty"`
}

// Schedule is the ordered slot sequence produced by one generation run.
type Schedule []Slot

// AssignedCount returns the number of occupied slots.
func (s Schedule) AssignedCount() int {
	n := 0
	for _, slot := range s {
		if slot.Occupied() {
			n++
		}
	}
	return n
}

// DaySlots returns the slots belonging to the given day, preserving order.
func (s Schedule) DaySlots(day int) Schedule {
	var out Schedule
	for _, slot := range s {
		if slot.Day == day {
			out = append(out, slot)
		}
	}
	return out
}

// Assignment is the outcome of one greedy assignment run: the full schedule
// (occupied and free slots alike) plus the participants that could not be
// placed. Unplaced is only non-empty when demand exceeds slot supply.
type Assignment struct {
	Schedule Schedule `json:"schedule"`
	Unplaced []string `json:"unplaced,omitempty"`
}

// CapacityReport compares slot supply against participant demand. It is a
// necessary-but-not-sufficient pre-check: per-participant constraints are
// deliberately not considered here.
type CapacityReport struct {
	SlotsAvailable        int `json:"slots_available"`
	ParticipantsRequested int `json:"participants_requested"`
	Shortfall             int `json:"shortfall"`
}

// Sufficient reports whether supply covers demand.
func (r CapacityReport) Sufficient() bool {
	return r.Shortfall == 0
}

// Surplus returns the number of extra slots beyond demand, or 0 on shortfall.
func (r CapacityReport) Surplus() int {
	if extra := r.SlotsAvailable - r.ParticipantsRequested; extra > 0 {
		return extra
	}
	return 0
}
