package timeutil

import (
	"fmt"
	"time"
)

// dateLayout is the calendar date format used throughout the export data.
const dateLayout = "2006-01-02"

// WeekOf returns the ISO-8601 week key (YYYY-Www) for a YYYY-MM-DD date.
// The year component is the ISO week-year, so dates near January 1 can
// belong to the neighboring year's first or last week ("2024-12-31" is
// "2025-W01").
func WeekOf(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week), nil
}

// MonthOf returns the calendar month key (YYYY-MM) for a YYYY-MM-DD date.
func MonthOf(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Format("2006-01"), nil
}

// DayTitle formats a YYYY-MM-DD date for daily report headers, e.g.
// "Monday, January 15, 2024". Unparseable input is returned unchanged.
func DayTitle(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 02, 2006")
}

// DayAbbrev formats a YYYY-MM-DD date for weekly day rows, e.g.
// "Mon Jan 15". Unparseable input is returned unchanged.
func DayAbbrev(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon Jan 02")
}
