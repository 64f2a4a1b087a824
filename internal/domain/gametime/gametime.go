// Package gametime parses the elapsed-time strings carried by match events.
package gametime

import (
	"fmt"
	"strconv"
	"strings"
)

// RegulationSeconds is the length of regulation play. A goal recorded past
// this point classifies the whole match as overtime.
const RegulationSeconds = 60 * 60

// Seconds converts an "mm:ss" elapsed-time string to total seconds.
func Seconds(clock string) (int, error) {
	minutes, seconds, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return 0, fmt.Errorf("elapsed time %q is not mm:ss", clock)
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("elapsed time %q has invalid minutes", clock)
	}
	s, err := strconv.Atoi(seconds)
	if err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("elapsed time %q has invalid seconds", clock)
	}

	return m*60 + s, nil
}

// IsOvertime reports whether an elapsed-time string lies strictly past
// regulation. Unparseable strings are never overtime; ingestion rejects
// them before they are stored.
func IsOvertime(clock string) bool {
	total, err := Seconds(clock)
	if err != nil {
		return false
	}
	return total > RegulationSeconds
}
