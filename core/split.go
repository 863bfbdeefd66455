// Package core has core logic for slot generation, availability checks and
// greedy assignment.
package core

import "github.com/huangsam/timeslot/schema"

// SplitWindow subdivides a raw day window around a fixed exclusion window
// (typically a lunch break), producing a set of disjoint sub-windows:
//
//   - no intersection: the window is returned unchanged
//   - window fully contains the exclusion: two windows, one on each side
//   - left overlap: only the portion before the exclusion survives
//   - right overlap: only the portion after the exclusion survives
//   - window fully inside the exclusion: nothing survives
//
// The function is pure; callers that want the adjustments to be user-visible
// report them at configuration time.
func SplitWindow(w, exclusion schema.TimeWindow) []schema.TimeWindow {
	switch {
	case w.End <= exclusion.Start || w.Start >= exclusion.End:
		// Disjoint from the exclusion window.
		return []schema.TimeWindow{w}
	case w.Start < exclusion.Start && w.End > exclusion.End:
		return []schema.TimeWindow{
			{Start: w.Start, End: exclusion.Start},
			{Start: exclusion.End, End: w.End},
		}
	case w.Start < exclusion.Start:
		// Left overlap; the tail inside the exclusion is dropped.
		return []schema.TimeWindow{{Start: w.Start, End: exclusion.Start}}
	case w.End > exclusion.End:
		// Right overlap; the head inside the exclusion is dropped.
		return []schema.TimeWindow{{Start: exclusion.End, End: w.End}}
	default:
		// Fully consumed by the exclusion window.
		return nil
	}
}
