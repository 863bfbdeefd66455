package contract

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// GeneratedID returns the placeholder id for the n-th participant (1-based)
// when no roster entry names them.
func GeneratedID(n int) string {
	return fmt.Sprintf("Participant_%d", n)
}

// LoadRoster resolves the participant id list for a run. With no roster file
// the ids are generated. A roster shorter than the requested count is padded
// with generated ids (with a warning); a longer roster is truncated (also
// with a warning) so the count stays authoritative.
func LoadRoster(path string, count int) ([]string, error) {
	if path == "" {
		ids := make([]string, count)
		for i := range ids {
			ids[i] = GeneratedID(i + 1)
		}
		return ids, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open roster file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading roster file %s: %w", path, err)
	}

	switch {
	case len(ids) < count:
		LogWarn(fmt.Sprintf("roster has %d names but %d participants requested; padding with generated ids", len(ids), count), nil)
		for i := len(ids); i < count; i++ {
			ids = append(ids, GeneratedID(i+1))
		}
	case len(ids) > count:
		LogWarn(fmt.Sprintf("roster has %d names but %d participants requested; extra names ignored", len(ids), count), nil)
		ids = ids[:count]
	}

	return ids, nil
}
