package core

import (
	"testing"

	"github.com/huangsam/timeslot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSlots(day, count int) []schema.Slot {
	slots := make([]schema.Slot, count)
	for i := range slots {
		start := schema.Clock(9*60 + i*30)
		slots[i] = schema.Slot{Day: day, Start: start, End: start + 30}
	}
	return slots
}

// TestAssignConstrainedFirst verifies constrained participants claim their
// admissible slots before unconstrained participants take anything.
func TestAssignConstrainedFirst(t *testing.T) {
	// Slots at 09:00, 09:30, 10:00, 10:30 on day 1.
	slots := makeSlots(1, 4)
	constraints := map[string]schema.ParticipantConstraint{
		"Carol": {ID: "Carol", Windows: []schema.TimeWindow{{Start: 10 * 60, End: 11 * 60}}},
	}

	// Carol is listed last but must still get a 10:00+ slot.
	result := Assign(slots, []string{"Alice", "Bob", "Carol"}, constraints)

	require.Empty(t, result.Unplaced)
	assert.Equal(t, "Carol", result.Schedule[2].Occupant)
	assert.Equal(t, "Alice", result.Schedule[0].Occupant)
	assert.Equal(t, "Bob", result.Schedule[1].Occupant)
	assert.False(t, result.Schedule[3].Occupied())
}

// TestAssignFailedConstrainedBeforeUnconstrained pins down the second-pass
// order: constrained participants that found no admissible slot are retried
// ahead of the unconstrained group, both in original order.
func TestAssignFailedConstrainedBeforeUnconstrained(t *testing.T) {
	// Two slots only, both on day 1; Zoe's constraint admits neither.
	slots := makeSlots(1, 2)
	constraints := map[string]schema.ParticipantConstraint{
		"Zoe": {ID: "Zoe", Days: []int{5}},
	}

	result := Assign(slots, []string{"Alice", "Zoe", "Bob"}, constraints)

	// Zoe failed pass 1, so she beats Alice and Bob to the first free slot.
	assert.Equal(t, "Zoe", result.Schedule[0].Occupant)
	assert.Equal(t, "Alice", result.Schedule[1].Occupant)
	assert.Equal(t, []string{"Bob"}, result.Unplaced)
}

// TestAssignOverCapacity checks that excess participants end up unplaced in
// order, not dropped silently.
func TestAssignOverCapacity(t *testing.T) {
	slots := makeSlots(1, 2)
	result := Assign(slots, []string{"A", "B", "C", "D"}, nil)

	assert.Equal(t, 2, result.Schedule.AssignedCount())
	assert.Equal(t, []string{"C", "D"}, result.Unplaced)
}

// TestAssignDoesNotMutateInput verifies the functional contract: input slots
// stay untouched across calls.
func TestAssignDoesNotMutateInput(t *testing.T) {
	slots := makeSlots(1, 3)
	_ = Assign(slots, []string{"Alice", "Bob"}, nil)

	for _, slot := range slots {
		assert.False(t, slot.Occupied(), "input slot %s was mutated", slot)
	}
}

// TestAssignIdempotent verifies identical inputs yield identical assignments.
func TestAssignIdempotent(t *testing.T) {
	slots := makeSlots(1, 5)
	participants := []string{"Alice", "Bob", "Carol", "Dave"}
	constraints := map[string]schema.ParticipantConstraint{
		"Bob":  {ID: "Bob", Windows: []schema.TimeWindow{{Start: 10 * 60, End: 11 * 60}}},
		"Dave": {ID: "Dave", Days: []int{1}},
	}

	first := Assign(slots, participants, constraints)
	second := Assign(slots, participants, constraints)
	assert.Equal(t, first, second)
}

// TestAssignNoDoubleOccupancy verifies each participant lands in exactly one
// slot and every constrained occupant satisfies their own constraint.
func TestAssignNoDoubleOccupancy(t *testing.T) {
	slots := append(makeSlots(1, 4), makeSlots(2, 4)...)
	participants := []string{"P1", "P2", "P3", "P4", "P5", "P6"}
	constraints := map[string]schema.ParticipantConstraint{
		"P2": {ID: "P2", Days: []int{2}},
		"P5": {ID: "P5", Windows: []schema.TimeWindow{{Start: 10 * 60, End: 12 * 60}}},
	}

	result := Assign(slots, participants, constraints)
	require.Empty(t, result.Unplaced)

	seen := make(map[string]int)
	for _, slot := range result.Schedule {
		if !slot.Occupied() {
			continue
		}
		seen[slot.Occupant]++
		if c, ok := constraints[slot.Occupant]; ok {
			assert.True(t, IsAvailable(&c, slot), "%s placed in inadmissible slot %s", slot.Occupant, slot)
		}
	}
	for _, id := range participants {
		assert.Equal(t, 1, seen[id], "%s should occupy exactly one slot", id)
	}
}

// TestAssignGreedyOrderSensitivity documents the heuristic: the first-listed
// constrained participant wins a contested slot even when swapping would
// satisfy both.
func TestAssignGreedyOrderSensitivity(t *testing.T) {
	slots := makeSlots(1, 2) // 09:00 and 09:30
	constraints := map[string]schema.ParticipantConstraint{
		// Flexible admits both slots, Narrow admits only the first.
		"Flexible": {ID: "Flexible", Windows: []schema.TimeWindow{{Start: 9 * 60, End: 10 * 60}}},
		"Narrow":   {ID: "Narrow", Windows: []schema.TimeWindow{{Start: 9 * 60, End: 9*60 + 30}}},
	}

	result := Assign(slots, []string{"Flexible", "Narrow"}, constraints)

	// Flexible grabs 09:00 first; Narrow fails pass 1 and falls through to
	// the unconstrained-style pass, landing at 09:30.
	assert.Equal(t, "Flexible", result.Schedule[0].Occupant)
	assert.Equal(t, "Narrow", result.Schedule[1].Occupant)
	assert.Empty(t, result.Unplaced)
}
