package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/schema"
)

// WriteCapacity prints the supply-vs-demand pre-check so callers can decide
// to proceed, truncate, or abort before generating a schedule.
func WriteCapacity(report schema.CapacityReport, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Slots available:        %d\n", report.SlotsAvailable); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Participants requested: %d\n", report.ParticipantsRequested); err != nil {
			return err
		}
		if report.Sufficient() {
			_, err := fmt.Fprintf(w, "%s %d extra slot(s) available\n",
				contract.OkColor.Sprint("Sufficient capacity:"), report.Surplus())
			return err
		}
		if _, err := fmt.Fprintf(w, "%s short by %d slot(s)\n",
			contract.BadColor.Sprint("Not enough slots:"), report.Shortfall); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "Consider shorter slots, more intervals, or more days.")
		return err
	}, "Wrote report")
}
