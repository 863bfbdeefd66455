package contract

import (
	"testing"

	"github.com/huangsam/timeslot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigClone verifies the clone shares no mutable state with the
// original.
func TestConfigClone(t *testing.T) {
	lunch := schema.DefaultLunchWindow
	original := &Config{
		Participants: 10,
		SlotMinutes:  15,
		DaySchedule: schema.DaySchedule{
			1: {{Start: 9 * 60, End: 16 * 60}},
		},
		Lunch:  &lunch,
		Output: schema.CSVOut,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak back.
	clone.DaySchedule[1][0].End = 17 * 60
	clone.DaySchedule[2] = []schema.TimeWindow{{Start: 10 * 60, End: 12 * 60}}
	clone.Lunch.Start = 11 * 60

	assert.Equal(t, schema.Clock(16*60), original.DaySchedule[1][0].End)
	assert.NotContains(t, original.DaySchedule, 2)
	assert.Equal(t, schema.Clock(12*60), original.Lunch.Start)
}

func TestConfigCloneNilFields(t *testing.T) {
	original := &Config{Participants: 5}
	clone := original.Clone()
	assert.Nil(t, clone.DaySchedule)
	assert.Nil(t, clone.Lunch)
	assert.Equal(t, 5, clone.Participants)
}
