package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string
)

// MinutesPerDay bounds all clock arithmetic; slot generation fails fast
// rather than wrap past midnight.
const MinutesPerDay = 24 * 60

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// FreeSlotLabel is the exported placeholder for an unoccupied slot.
const FreeSlotLabel = "AVAILABLE"

// DefaultLunchWindow is the exclusion window that raw day intervals are
// split around unless the caller overrides or disables it.
var DefaultLunchWindow = TimeWindow{Start: 12 * 60, End: 13 * 60}
