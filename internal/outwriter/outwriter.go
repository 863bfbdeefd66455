// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSchedule prints a generated schedule using the configured output format.
func (ow *OutWriter) WriteSchedule(assignment schema.Assignment, report schema.CapacityReport, cfg *contract.Config, duration time.Duration) error {
	return WriteSchedule(assignment, report, cfg, duration)
}

// WriteCapacity prints a capacity report using the configured output format.
func (ow *OutWriter) WriteCapacity(report schema.CapacityReport, cfg *contract.Config) error {
	return WriteCapacity(report, cfg)
}

// getMaxTableIDWidth calculates the maximum width for participant ids in
// table output based on terminal width and table configuration.
func getMaxTableIDWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (Day + Start + End + Duration)
	// with borders, separators and padding.
	const baseWidth = 45

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable id width
		return 12
	}
	if available > 40 {
		// Maximum id width to prevent overly wide tables
		return 40
	}
	return available
}
