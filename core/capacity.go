package core

import "github.com/huangsam/timeslot/schema"

// Capacity compares generated slot supply against the requested participant
// count. It is exposed separately so callers can warn or abort before
// assignment. Per-participant constraints are deliberately ignored: this is
// a necessary-but-not-sufficient pre-check.
func Capacity(slots []schema.Slot, requested int) schema.CapacityReport {
	shortfall := requested - len(slots)
	if shortfall < 0 {
		shortfall = 0
	}
	return schema.CapacityReport{
		SlotsAvailable:        len(slots),
		ParticipantsRequested: requested,
		Shortfall:             shortfall,
	}
}
