package entry

import "time"

// Entry represents a single tracked interval from a Toggl export.
// Start and End are wall-clock display strings; Duration is supplied by the
// export and is the only quantity that is ever summed.
type Entry struct {
	Date        string // calendar date, YYYY-MM-DD
	Project     string
	Description string
	Start       string // time of day, HH:MM
	End         string // time of day, HH:MM
	Duration    time.Duration
}
