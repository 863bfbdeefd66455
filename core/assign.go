package core

import "github.com/huangsam/timeslot/schema"

// Assign maps participants to slots with a two-pass, first-fit strategy:
//
//  1. Participants with a constraint record, in their original relative
//     order, each take the first free slot admissible per IsAvailable.
//  2. Everyone still unplaced (constrained participants that found no
//     admissible slot, then the unconstrained participants, preserving
//     original order within each group) takes the first free slot with no
//     admissibility check.
//
// This is a greedy, order-sensitive heuristic, not a matching solver: two
// constrained participants competing for one admissible slot resolve in
// favor of the earlier-listed participant even when a different pairing
// could satisfy both. Re-running with identical inputs yields an identical
// result.
//
// The input slots are never mutated; the returned assignment carries a fresh
// schedule covering every input slot, occupied or not.
func Assign(slots []schema.Slot, participants []string, constraints map[string]schema.ParticipantConstraint) schema.Assignment {
	schedule := make(schema.Schedule, len(slots))
	copy(schedule, slots)

	// 1. Partition into constrained and unconstrained, preserving order.
	var constrained, unconstrained []string
	for _, id := range participants {
		if _, ok := constraints[id]; ok {
			constrained = append(constrained, id)
		} else {
			unconstrained = append(unconstrained, id)
		}
	}

	// 2. Pass 1: first admissible free slot per constrained participant.
	var failed []string
	for _, id := range constrained {
		c := constraints[id]
		placed := false
		for i := range schedule {
			if schedule[i].Occupied() || !IsAvailable(&c, schedule[i]) {
				continue
			}
			schedule[i].Occupant = id
			placed = true
			break
		}
		if !placed {
			failed = append(failed, id)
		}
	}

	// 3. Pass 2: explicit ordered merge of pass-1 failures ahead of the
	// unconstrained participants, each taking the first free slot.
	remaining := make([]string, 0, len(failed)+len(unconstrained))
	remaining = append(remaining, failed...)
	remaining = append(remaining, unconstrained...)

	var unplaced []string
	for _, id := range remaining {
		placed := false
		for i := range schedule {
			if schedule[i].Occupied() {
				continue
			}
			schedule[i].Occupant = id
			placed = true
			break
		}
		if !placed {
			unplaced = append(unplaced, id)
		}
	}

	return schema.Assignment{Schedule: schedule, Unplaced: unplaced}
}
