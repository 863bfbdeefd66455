package core

import "github.com/huangsam/timeslot/schema"

// IsAvailable decides whether a participant with the given constraint may
// occupy the slot. A nil constraint means always available. Day membership
// and window membership are checked independently; a participant with both
// restrictions must satisfy both.
//
// Window membership checks only the slot start against the half-open window
// [start, end). This is a known permissive edge: a slot that starts inside an
// allowed window but extends past its end is still considered available.
func IsAvailable(c *schema.ParticipantConstraint, slot schema.Slot) bool {
	if c == nil {
		return true
	}

	if c.Days != nil {
		found := false
		for _, d := range c.Days {
			if d == slot.Day {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.Windows != nil {
		for _, w := range c.Windows {
			if w.Start <= slot.Start && slot.Start < w.End {
				return true
			}
		}
		return false
	}

	return true
}
