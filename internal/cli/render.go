package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/evensen/toggltxt/internal/report"
	"github.com/evensen/toggltxt/internal/timeutil"
)

const (
	wideRule   = 70
	narrowRule = 35
)

// Border characters distinguish the section kinds at a glance.
const (
	dayBorder     = "="
	weekBorder    = "▓"
	monthBorder   = "█"
	overallBorder = "#"
)

// writeHeader prints a boxed section title: blank line, border, title,
// border, blank line.
func writeHeader(w io.Writer, title string, border string) {
	rule := strings.Repeat(border, wideRule)
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", rule, title, rule)
}

// writeSectionBanner prints the wide banner that opens the weekly and
// monthly summary sections.
func writeSectionBanner(w io.Writer, title string) {
	rule := strings.Repeat("=", wideRule)
	_, _ = fmt.Fprintf(w, "\n\n%s\n%s\n%s\n", rule, title, rule)
}

// shortWeekKey strips the year prefix from an ISO week key, so "2024-W03"
// becomes "W03".
func shortWeekKey(key string) string {
	if len(key) > 5 {
		return key[5:]
	}
	return key
}

// RenderDay writes one day's timeline: the header, the coalesced work
// blocks in order, and the daily breakdown.
func RenderDay(w io.Writer, day report.Day) {
	writeHeader(w, timeutil.DayTitle(day.Date), dayBorder)
	for _, block := range day.Blocks {
		_, _ = fmt.Fprintln(w, FormatEntryLine(block))
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", wideRule))
	_, _ = fmt.Fprintf(w, "Daily Total: %s (%d work blocks)\n", FormatDuration(day.Total), day.BlockCount)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", wideRule))
	for _, share := range day.Projects {
		_, _ = fmt.Fprintln(w, FormatProjectStat(share.Project, share.Duration, share.Percentage))
	}
}

// RenderWeek writes one ISO week's summary: per-day totals followed by the
// week total and project breakdown.
func RenderWeek(w io.Writer, week report.Week) {
	writeHeader(w, "WEEK "+week.Key, weekBorder)
	for _, day := range week.Days {
		_, _ = fmt.Fprintf(w, "%-15s %8s\n", timeutil.DayAbbrev(day.Date), FormatDuration(day.Total))
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", narrowRule))
	_, _ = fmt.Fprintf(w, "Week Total: %s\n", FormatDurationLong(week.Total))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", narrowRule))
	for _, share := range week.Projects {
		_, _ = fmt.Fprintln(w, FormatProjectStatLong(share.Project, share.Duration, share.Percentage))
	}
}

// RenderMonth writes one month's summary: per-week totals followed by the
// month total, the per-day average, and the project breakdown.
func RenderMonth(w io.Writer, month report.Month) {
	writeHeader(w, "MONTH "+month.Key, monthBorder)
	for _, week := range month.Weeks {
		_, _ = fmt.Fprintf(w, "Week %-10s %15s\n", shortWeekKey(week.Key), FormatDurationLong(week.Total))
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", narrowRule))
	_, _ = fmt.Fprintf(w, "Month Total: %s\n", FormatDurationLong(month.Total))
	_, _ = fmt.Fprintf(w, "Average per day: %s\n", FormatDuration(month.AveragePerDay))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", narrowRule))
	for _, share := range month.Projects {
		_, _ = fmt.Fprintln(w, FormatProjectStatLong(share.Project, share.Duration, share.Percentage))
	}
}

// RenderOverall writes the closing summary covering the whole export.
func RenderOverall(w io.Writer, overall report.Overall) {
	writeHeader(w, fmt.Sprintf("OVERALL SUMMARY (%d days)", overall.Days), overallBorder)
	_, _ = fmt.Fprintf(w, "Total time tracked: %s\n", FormatDurationLong(overall.Total))
	_, _ = fmt.Fprintf(w, "Average per day: %s\n", FormatDuration(overall.AveragePerDay))
	_, _ = fmt.Fprintln(w, "\nTop Projects:")
	for _, share := range overall.Projects {
		_, _ = fmt.Fprintf(w, "%-40s %15s (%5.1f%%)\n", share.Project, FormatDurationLong(share.Duration), share.Percentage)
	}
}

// RenderDaily writes every day timeline in date order.
func RenderDaily(w io.Writer, days []report.Day) {
	for _, day := range days {
		RenderDay(w, day)
	}
}

// RenderWeekly writes the weekly summaries section, banner included.
func RenderWeekly(w io.Writer, weeks []report.Week) {
	writeSectionBanner(w, "WEEKLY SUMMARIES")
	for _, week := range weeks {
		RenderWeek(w, week)
	}
}

// RenderMonthly writes the monthly summaries section, banner included.
func RenderMonthly(w io.Writer, months []report.Month) {
	writeSectionBanner(w, "MONTHLY SUMMARIES")
	for _, month := range months {
		RenderMonth(w, month)
	}
}

// RenderReport writes the full report: daily timelines, weekly summaries,
// monthly summaries, and the overall summary.
func RenderReport(w io.Writer, rep report.Report) {
	RenderDaily(w, rep.Days)
	RenderWeekly(w, rep.Weeks)
	RenderMonthly(w, rep.Months)
	RenderOverall(w, rep.Overall)
}
