package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/schema"
)

// Scheduler owns one generation run: a validated day schedule, the slot and
// break durations, the constraint set, and the schedule produced by the last
// Generate call. Instances share no state; concurrent use of independent
// schedulers is safe.
type Scheduler struct {
	daySchedule  schema.DaySchedule
	slotMinutes  int
	breakMinutes int
	constraints  map[string]schema.ParticipantConstraint
	schedule     schema.Schedule
}

// NewScheduler validates durations and windows and constructs a Scheduler.
// Days are processed in ascending identifier order; windows within a day are
// processed in the given order.
func NewScheduler(daySchedule schema.DaySchedule, slotMinutes, breakMinutes int) (*Scheduler, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}
	if breakMinutes < 0 {
		return nil, fmt.Errorf("break duration must be non-negative, got %d", breakMinutes)
	}
	if len(daySchedule) == 0 {
		return nil, fmt.Errorf("day schedule must cover at least one day")
	}
	for day, windows := range daySchedule {
		if day < 1 {
			return nil, fmt.Errorf("day identifier %d must be >= 1", day)
		}
		for _, w := range windows {
			if _, err := schema.NewTimeWindow(w.Start, w.End); err != nil {
				return nil, fmt.Errorf("day %d: %w", day, err)
			}
		}
	}
	return &Scheduler{
		daySchedule:  daySchedule,
		slotMinutes:  slotMinutes,
		breakMinutes: breakMinutes,
		constraints:  map[string]schema.ParticipantConstraint{},
	}, nil
}

// NormalizeDaySchedule splits every raw window around the lunch exclusion,
// reporting one notice per adjustment through notify. A nil lunch window or
// notify passes the schedule through untouched or silently, respectively.
// Splitting runs once per raw input window at configuration time; disjoint
// windows supplied directly come out unchanged.
func NormalizeDaySchedule(raw schema.DaySchedule, lunch *schema.TimeWindow, notify func(string)) schema.DaySchedule {
	if lunch == nil {
		return raw
	}
	out := make(schema.DaySchedule, len(raw))
	for _, day := range raw.Days() {
		var windows []schema.TimeWindow
		for _, w := range raw[day] {
			parts := SplitWindow(w, *lunch)
			if notify != nil && (len(parts) != 1 || parts[0] != w) {
				notify(fmt.Sprintf("Day %d: adjusted %s around lunch -> %s", day, w, formatWindows(parts)))
			}
			windows = append(windows, parts...)
		}
		out[day] = windows
	}
	return out
}

func formatWindows(windows []schema.TimeWindow) string {
	if len(windows) == 0 {
		return "(removed)"
	}
	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = w.String()
	}
	return strings.Join(parts, ", ")
}

// SetConstraints replaces the scheduler's constraint set. The map is copied
// so the scheduler owns its constraints for its lifetime; later mutation of
// the caller's map has no effect. A nil map is treated as "no constraints
// for anyone".
func (s *Scheduler) SetConstraints(constraints map[string]schema.ParticipantConstraint) {
	s.constraints = contract.ConstraintsFor(constraints)
}

// AllSlots generates the full multi-day slot sequence, days ascending.
func (s *Scheduler) AllSlots() ([]schema.Slot, error) {
	var all []schema.Slot
	for _, day := range s.daySchedule.Days() {
		slots, err := GenerateSlots(s.daySchedule[day], s.slotMinutes, s.breakMinutes, day)
		if err != nil {
			return nil, err
		}
		all = append(all, slots...)
	}
	return all, nil
}

// Capacity runs the cheap supply-vs-demand pre-check for the requested
// participant count.
func (s *Scheduler) Capacity(requested int) (schema.CapacityReport, error) {
	slots, err := s.AllSlots()
	if err != nil {
		return schema.CapacityReport{}, err
	}
	return Capacity(slots, requested), nil
}

// Generate produces a fresh schedule for the given participants, replacing
// any previous one wholesale. Surplus slots stay unoccupied; participants
// that cannot be placed are reported in the assignment.
func (s *Scheduler) Generate(participants []string) (schema.Assignment, error) {
	slots, err := s.AllSlots()
	if err != nil {
		return schema.Assignment{}, err
	}
	assignment := Assign(slots, participants, s.constraints)
	s.schedule = assignment.Schedule
	return assignment, nil
}

// Schedule returns the schedule from the last Generate call, or nil if no
// schedule has been generated yet.
func (s *Scheduler) Schedule() schema.Schedule {
	return s.schedule
}

// SlotMinutes returns the configured slot duration in minutes.
func (s *Scheduler) SlotMinutes() int {
	return s.slotMinutes
}
