package core

import (
	"testing"

	"github.com/huangsam/timeslot/schema"
	"github.com/stretchr/testify/assert"
)

// TestIsAvailable tests day and window admissibility checks.
func TestIsAvailable(t *testing.T) {
	slot := schema.Slot{Day: 2, Start: 10 * 60, End: 10*60 + 30}

	tests := []struct {
		name       string
		constraint *schema.ParticipantConstraint
		expected   bool
	}{
		{
			name:       "nil constraint is always available",
			constraint: nil,
			expected:   true,
		},
		{
			name:       "empty constraint record is always available",
			constraint: &schema.ParticipantConstraint{ID: "Alice"},
			expected:   true,
		},
		{
			name:       "allowed day",
			constraint: &schema.ParticipantConstraint{ID: "Bob", Days: []int{1, 2}},
			expected:   true,
		},
		{
			name:       "disallowed day",
			constraint: &schema.ParticipantConstraint{ID: "Bob", Days: []int{1, 3}},
			expected:   false,
		},
		{
			name: "slot start inside window",
			constraint: &schema.ParticipantConstraint{
				ID:      "Carol",
				Windows: []schema.TimeWindow{{Start: 10 * 60, End: 11 * 60}},
			},
			expected: true,
		},
		{
			name: "slot start at window end is excluded",
			constraint: &schema.ParticipantConstraint{
				ID:      "Carol",
				Windows: []schema.TimeWindow{{Start: 9 * 60, End: 10 * 60}},
			},
			expected: false,
		},
		{
			name: "slot extending past window end is still admissible",
			constraint: &schema.ParticipantConstraint{
				ID:      "Carol",
				Windows: []schema.TimeWindow{{Start: 9 * 60, End: 10*60 + 10}},
			},
			expected: true,
		},
		{
			name: "second window matches",
			constraint: &schema.ParticipantConstraint{
				ID: "Dave",
				Windows: []schema.TimeWindow{
					{Start: 8 * 60, End: 9 * 60},
					{Start: 10 * 60, End: 12 * 60},
				},
			},
			expected: true,
		},
		{
			name: "day matches but window does not",
			constraint: &schema.ParticipantConstraint{
				ID:      "Eve",
				Days:    []int{2},
				Windows: []schema.TimeWindow{{Start: 14 * 60, End: 16 * 60}},
			},
			expected: false,
		},
		{
			name: "window matches but day does not",
			constraint: &schema.ParticipantConstraint{
				ID:      "Eve",
				Days:    []int{1},
				Windows: []schema.TimeWindow{{Start: 10 * 60, End: 11 * 60}},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAvailable(tt.constraint, slot))
		})
	}
}
