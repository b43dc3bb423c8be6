package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day truncates t to midnight UTC. Every "same calendar day" comparison in
// the engine goes through this rather than string-prefix matching.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseClock converts an "HH:MM" 24-hour wall-clock string to minutes from
// midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// shiftHours computes the duration of a shift in hours from its wall-clock
// strings. Shifts never cross midnight, so a non-positive duration is a data
// inconsistency: it is clamped to zero and reported rather than propagated.
func shiftHours(startTime, endTime string) (float64, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return 0, err
	}
	if end <= start {
		return 0, fmt.Errorf("endTime %q is not after startTime %q", endTime, startTime)
	}
	return float64(end-start) / 60.0, nil
}
