package entry

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// durationPattern matches export durations in H:MM:SS form (e.g., "1:30:45").
// Hours carry no width limit; minute and second fields are not range-checked.
var durationPattern = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)

// ParseDuration parses a Toggl export duration in H:MM:SS form.
// Exactly three colon-separated unsigned integer fields are required.
// Beyond that no range validation is applied: minute and second fields of 60
// or more convert arithmetically, so "1:75:99" parses to 2h16m39s.
func ParseDuration(input string) (time.Duration, error) {
	matches := durationPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: expected H:MM:SS, got %q", input)
	}

	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in duration %q: %w", input, err)
	}
	minutes, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in duration %q: %w", input, err)
	}
	seconds, err := strconv.Atoi(matches[3])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in duration %q: %w", input, err)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}
