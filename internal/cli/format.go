// Package cli provides the text presentation layer for the toggltxt
// application. It turns assembled report data into the plain text layout;
// it formats, never computes.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/evensen/toggltxt/internal/entry"
)

// FormatDuration formats a duration in the short form used on timeline and
// daily lines. Minutes are always shown once hours are; seconds are
// discarded.
// Examples: "0m", "30m", "1h 0m", "2h 45m"
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDurationLong formats a duration in the long form used for summary
// totals: only the non-zero day, hour and minute components appear.
// Examples: "0m", "45m", "2h 5m", "1d 3h", "2d 1h 30m"
func FormatDurationLong(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	days := totalMinutes / (24 * 60)
	hours := (totalMinutes % (24 * 60)) / 60
	minutes := totalMinutes % 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// FormatEntryLine renders one work block as a timeline row. The description
// column only appears when there is one.
// Example: "09:00 - 11:00 ( 2h 0m) | Alpha                        | task1; task2"
func FormatEntryLine(block entry.Entry) string {
	base := fmt.Sprintf("%s - %s (%6s) | %-28s", block.Start, block.End, FormatDuration(block.Duration), block.Project)
	if block.Description != "" {
		return base + " | " + block.Description
	}
	return base
}

// FormatProjectStat renders a project breakdown row with the short duration
// form, as used under daily totals.
func FormatProjectStat(project string, d time.Duration, percentage float64) string {
	return fmt.Sprintf("%-35s %8s (%5.1f%%)", project, FormatDuration(d), percentage)
}

// FormatProjectStatLong renders a project breakdown row with the long
// duration form, as used under week and month totals.
func FormatProjectStatLong(project string, d time.Duration, percentage float64) string {
	return fmt.Sprintf("%-35s %12s (%5.1f%%)", project, FormatDurationLong(d), percentage)
}

// TruncateDescription shortens desc to max characters and marks the cut
// with an ellipsis.
func TruncateDescription(desc string, max int) string {
	runes := []rune(desc)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return desc
}
