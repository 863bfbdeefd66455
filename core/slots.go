package core

import (
	"fmt"

	"github.com/huangsam/timeslot/schema"
)

// GenerateSlots expands a day's ordered windows into the fixed-length slots
// that fit entirely within each window. Per window, a cursor starts at the
// window start and advances by slot duration plus break duration; a window
// that cannot fit one more full slot yields no further slot (no partial
// slots). Output is deterministic for identical inputs.
//
// slotMinutes must be positive and breakMinutes non-negative; both are
// validated at configuration time. A slot that fits its window can never
// cross midnight for validated windows; a window reaching past 24:00 is an
// explicit error rather than a silent wrap.
func GenerateSlots(windows []schema.TimeWindow, slotMinutes, breakMinutes, day int) ([]schema.Slot, error) {
	var slots []schema.Slot
	for _, w := range windows {
		cursor := w.Start
		for {
			slotEnd := cursor + schema.Clock(slotMinutes)
			if slotEnd > w.End {
				break
			}
			if slotEnd > schema.MinutesPerDay {
				return nil, fmt.Errorf("slot %s-%s on day %d crosses midnight", cursor, slotEnd, day)
			}
			slots = append(slots, schema.Slot{Day: day, Start: cursor, End: slotEnd})
			cursor = slotEnd + schema.Clock(breakMinutes)
		}
	}
	return slots, nil
}
