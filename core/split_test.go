package core

import (
	"testing"

	"github.com/huangsam/timeslot/schema"
	"github.com/stretchr/testify/assert"
)

// TestSplitWindow tests window subdivision around a lunch exclusion.
func TestSplitWindow(t *testing.T) {
	lunch := schema.TimeWindow{Start: 12 * 60, End: 13 * 60}

	tests := []struct {
		name     string
		window   schema.TimeWindow
		expected []schema.TimeWindow
	}{
		{
			name:     "disjoint before lunch",
			window:   schema.TimeWindow{Start: 9 * 60, End: 11 * 60},
			expected: []schema.TimeWindow{{Start: 9 * 60, End: 11 * 60}},
		},
		{
			name:     "disjoint after lunch",
			window:   schema.TimeWindow{Start: 14 * 60, End: 16 * 60},
			expected: []schema.TimeWindow{{Start: 14 * 60, End: 16 * 60}},
		},
		{
			name:     "touching lunch start stays whole",
			window:   schema.TimeWindow{Start: 9 * 60, End: 12 * 60},
			expected: []schema.TimeWindow{{Start: 9 * 60, End: 12 * 60}},
		},
		{
			name:     "touching lunch end stays whole",
			window:   schema.TimeWindow{Start: 13 * 60, End: 16 * 60},
			expected: []schema.TimeWindow{{Start: 13 * 60, End: 16 * 60}},
		},
		{
			name:   "containing lunch splits in two",
			window: schema.TimeWindow{Start: 9 * 60, End: 16 * 60},
			expected: []schema.TimeWindow{
				{Start: 9 * 60, End: 12 * 60},
				{Start: 13 * 60, End: 16 * 60},
			},
		},
		{
			name:     "left overlap keeps the head",
			window:   schema.TimeWindow{Start: 11 * 60, End: 12*60 + 30},
			expected: []schema.TimeWindow{{Start: 11 * 60, End: 12 * 60}},
		},
		{
			name:     "right overlap keeps the tail",
			window:   schema.TimeWindow{Start: 12*60 + 30, End: 15 * 60},
			expected: []schema.TimeWindow{{Start: 13 * 60, End: 15 * 60}},
		},
		{
			name:     "fully inside lunch is removed",
			window:   schema.TimeWindow{Start: 12*60 + 15, End: 12*60 + 45},
			expected: nil,
		},
		{
			name:     "exactly the lunch window is removed",
			window:   schema.TimeWindow{Start: 12 * 60, End: 13 * 60},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitWindow(tt.window, lunch))
		})
	}
}

// TestSplitWindowDisjointness verifies the parts never intersect the
// exclusion and stay within the original window.
func TestSplitWindowDisjointness(t *testing.T) {
	lunch := schema.TimeWindow{Start: 12 * 60, End: 13 * 60}
	windows := []schema.TimeWindow{
		{Start: 8 * 60, End: 18 * 60},
		{Start: 11 * 60, End: 12*60 + 30},
		{Start: 12*60 + 30, End: 14 * 60},
	}

	for _, w := range windows {
		for _, part := range SplitWindow(w, lunch) {
			assert.GreaterOrEqual(t, part.Start, w.Start)
			assert.LessOrEqual(t, part.End, w.End)
			assert.True(t, part.End <= lunch.Start || part.Start >= lunch.End,
				"part %s intersects exclusion %s", part, lunch)
		}
	}
}
