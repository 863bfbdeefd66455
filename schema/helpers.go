package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses a time of day into a Clock value. Accepted forms are
// "HH:MM", "H:MM", and a bare hour like "9" or "09" (treated as on the hour).
// "24:00" is accepted so it can serve as the exclusive end of a window.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}

	var hourStr, minStr string
	if before, after, found := strings.Cut(s, ":"); found {
		hourStr, minStr = before, after
	} else {
		hourStr, minStr = s, "0"
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 24 {
		return 0, fmt.Errorf("hour %d out of range in %q", hour, s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range in %q", minute, s)
	}

	c := Clock(hour*60 + minute)
	if c > MinutesPerDay {
		return 0, fmt.Errorf("time %q is past midnight", s)
	}
	return c, nil
}

// ParseWindow parses a single "start-end" pair into a validated TimeWindow.
// Both sides accept the flexible forms of ParseClock, so "9-16" and
// "09:00-16:00" are equivalent.
func ParseWindow(s string) (TimeWindow, error) {
	startStr, endStr, found := strings.Cut(s, "-")
	if !found {
		return TimeWindow{}, fmt.Errorf("interval %q must contain a hyphen (e.g. 09:00-12:00 or 9-16)", s)
	}
	start, err := ParseClock(startStr)
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(start, end)
}

// ParseWindowList parses a separated list of "start-end" pairs, preserving
// order. The separator is typically "," for CLI interval input and ";" for
// constraint records.
func ParseWindowList(s, sep string) ([]TimeWindow, error) {
	var windows []TimeWindow
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := ParseWindow(part)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("no intervals found in %q", s)
	}
	return windows, nil
}

// UniformDaySchedule expands the legacy uniform-hours mode into a
// one-window-per-day DaySchedule covering days 1..numDays. It is sugar: the
// result feeds the same slot generator as explicit per-day intervals.
func UniformDaySchedule(numDays, startHour, endHour int) (DaySchedule, error) {
	if numDays < 1 {
		return nil, fmt.Errorf("day count must be >= 1, got %d", numDays)
	}
	window, err := NewTimeWindow(Clock(startHour*60), Clock(endHour*60))
	if err != nil {
		return nil, err
	}
	ds := make(DaySchedule, numDays)
	for day := 1; day <= numDays; day++ {
		ds[day] = []TimeWindow{window}
	}
	return ds, nil
}

// ParseDaySet parses a day spec into an inclusive list of day identifiers.
// Accepted forms are a single day ("2") and an inclusive range ("1-3").
func ParseDaySet(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if startStr, endStr, found := strings.Cut(s, "-"); found {
		start, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			return nil, fmt.Errorf("invalid day range start in %q: %w", s, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(endStr))
		if err != nil {
			return nil, fmt.Errorf("invalid day range end in %q: %w", s, err)
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("day range %q must satisfy 1 <= start <= end", s)
		}
		days := make([]int, 0, end-start+1)
		for d := start; d <= end; d++ {
			days = append(days, d)
		}
		return days, nil
	}

	day, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", s, err)
	}
	if day < 1 {
		return nil, fmt.Errorf("day %d must be >= 1", day)
	}
	return []int{day}, nil
}
