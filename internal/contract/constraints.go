package contract

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/timeslot/schema"
)

// LoadConstraints reads participant constraints from a text file.
//
// File format (one record per line, '#' starts a comment):
//
//	ID,Days,Windows
//	John Doe,1-2,09:00-12:00;14:00-16:00
//	Jane Smith,2,10:00-15:00
//
// Days is a single integer or an inclusive range; Windows is a
// semicolon-separated list of HH:MM-HH:MM pairs. An empty field means
// unconstrained on that axis. A malformed line is skipped with a warning
// rather than aborting the load; a missing file means no constraints for
// anyone and is not an error.
func LoadConstraints(path string) (map[string]schema.ParticipantConstraint, error) {
	constraints := make(map[string]schema.ParticipantConstraint)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			LogInfo(fmt.Sprintf("Constraints file %s not found; all participants available for all slots", path))
			return constraints, nil
		}
		return nil, fmt.Errorf("cannot open constraints file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseConstraintLine(line)
		if err != nil {
			LogWarn(fmt.Sprintf("skipping constraints line %d", lineNum), err)
			continue
		}
		constraints[c.ID] = c
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading constraints file %s: %w", path, err)
	}

	return constraints, nil
}

// parseConstraintLine parses one "ID,Days,Windows" record. Trailing fields
// are optional.
func parseConstraintLine(line string) (schema.ParticipantConstraint, error) {
	parts := strings.SplitN(line, ",", 3)

	id := strings.TrimSpace(parts[0])
	if id == "" {
		return schema.ParticipantConstraint{}, fmt.Errorf("missing participant id")
	}
	c := schema.ParticipantConstraint{ID: id}

	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		days, err := schema.ParseDaySet(parts[1])
		if err != nil {
			return schema.ParticipantConstraint{}, err
		}
		c.Days = days
	}

	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		windows, err := schema.ParseWindowList(parts[2], ";")
		if err != nil {
			return schema.ParticipantConstraint{}, err
		}
		c.Windows = windows
	}

	return c, nil
}
