package report

import (
	"sort"
	"time"

	"github.com/evensen/toggltxt/internal/entry"
	"github.com/evensen/toggltxt/internal/stats"
	"github.com/evensen/toggltxt/internal/timeutil"
)

// ProjectShare pairs a ranked project with its share of the period total.
// Percentage stays zero when the period total is zero.
type ProjectShare struct {
	Project    string
	Duration   time.Duration
	Percentage float64
}

// Day is one calendar day's coalesced timeline plus its aggregates.
type Day struct {
	Date       string
	Blocks     []entry.Entry
	Total      time.Duration
	BlockCount int
	Projects   []ProjectShare
}

// DayTotal pairs a date with its summed duration.
type DayTotal struct {
	Date  string
	Total time.Duration
}

// Week is one ISO week's day totals and project breakdown.
type Week struct {
	Key      string
	Days     []DayTotal
	Total    time.Duration
	Projects []ProjectShare
}

// WeekTotal pairs an ISO week key with its summed duration.
type WeekTotal struct {
	Key   string
	Total time.Duration
}

// Month is one calendar month's week totals and project breakdown.
type Month struct {
	Key           string
	Weeks         []WeekTotal
	Total         time.Duration
	AveragePerDay time.Duration
	Projects      []ProjectShare
}

// Overall summarizes the whole export.
type Overall struct {
	Days          int
	Total         time.Duration
	AveragePerDay time.Duration
	Projects      []ProjectShare
}

// Limits caps the ranked project list of each summary section.
// Zero or negative means no cap.
type Limits struct {
	WeekTop    int
	MonthTop   int
	OverallTop int
}

// Report bundles every section of a full run.
type Report struct {
	Days    []Day
	Weeks   []Week
	Months  []Month
	Overall Overall
}

// Build assembles all report sections from the export entries.
func Build(entries []entry.Entry, limits Limits) (Report, error) {
	weeks, err := BuildWeekly(entries, limits.WeekTop)
	if err != nil {
		return Report{}, err
	}
	months, err := BuildMonthly(entries, limits.MonthTop)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Days:    BuildDaily(entries),
		Weeks:   weeks,
		Months:  months,
		Overall: BuildOverall(entries, limits.OverallTop),
	}, nil
}

// BuildDaily assembles one Day per calendar date, ascending. Entries keep
// their export order inside each day, which is what makes coalescing
// chronological.
func BuildDaily(entries []entry.Entry) []Day {
	byDay, dates := groupByDate(entries)

	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		dayEntries := byDay[date]
		blocks := entry.CoalesceConsecutive(dayEntries)
		total, ranked := stats.CalculateProjectStats(dayEntries)

		days = append(days, Day{
			Date:       date,
			Blocks:     blocks,
			Total:      total,
			BlockCount: len(blocks),
			Projects:   withPercentages(ranked, total),
		})
	}
	return days
}

// BuildWeekly assembles one Week per ISO week, ascending, with per-day
// totals and the top projects capped at topN.
func BuildWeekly(entries []entry.Entry, topN int) ([]Week, error) {
	byWeek, keys, err := groupByPeriod(entries, timeutil.WeekOf)
	if err != nil {
		return nil, err
	}

	weeks := make([]Week, 0, len(keys))
	for _, key := range keys {
		weekEntries := byWeek[key]

		dayTotals, err := stats.GroupDurations(weekEntries, dateKey)
		if err != nil {
			return nil, err
		}
		days := make([]DayTotal, 0, len(dayTotals))
		for _, date := range sortedKeys(dayTotals) {
			days = append(days, DayTotal{Date: date, Total: dayTotals[date]})
		}

		total, ranked := stats.CalculateProjectStats(weekEntries)
		weeks = append(weeks, Week{
			Key:      key,
			Days:     days,
			Total:    total,
			Projects: limit(withPercentages(ranked, total), topN),
		})
	}
	return weeks, nil
}

// BuildMonthly assembles one Month per calendar month, ascending, with
// per-week totals, the per-day average and the top projects capped at topN.
func BuildMonthly(entries []entry.Entry, topN int) ([]Month, error) {
	byMonth, keys, err := groupByPeriod(entries, timeutil.MonthOf)
	if err != nil {
		return nil, err
	}

	months := make([]Month, 0, len(keys))
	for _, key := range keys {
		monthEntries := byMonth[key]

		weekTotals, err := stats.GroupDurations(monthEntries, weekKey)
		if err != nil {
			return nil, err
		}
		weeks := make([]WeekTotal, 0, len(weekTotals))
		for _, week := range sortedKeys(weekTotals) {
			weeks = append(weeks, WeekTotal{Key: week, Total: weekTotals[week]})
		}

		total, ranked := stats.CalculateProjectStats(monthEntries)
		months = append(months, Month{
			Key:           key,
			Weeks:         weeks,
			Total:         total,
			AveragePerDay: stats.AveragePerDay(total, monthEntries),
			Projects:      limit(withPercentages(ranked, total), topN),
		})
	}
	return months, nil
}

// BuildOverall summarizes the full export with the top projects capped
// at topN.
func BuildOverall(entries []entry.Entry, topN int) Overall {
	total, ranked := stats.CalculateProjectStats(entries)
	return Overall{
		Days:          stats.DistinctDays(entries),
		Total:         total,
		AveragePerDay: stats.AveragePerDay(total, entries),
		Projects:      limit(withPercentages(ranked, total), topN),
	}
}

func dateKey(e entry.Entry) (string, error) {
	return e.Date, nil
}

func weekKey(e entry.Entry) (string, error) {
	return timeutil.WeekOf(e.Date)
}

// groupByDate buckets entries under their calendar date, preserving input
// order inside each bucket. Dates come back sorted ascending.
func groupByDate(entries []entry.Entry) (map[string][]entry.Entry, []string) {
	byDay := make(map[string][]entry.Entry)
	for _, e := range entries {
		byDay[e.Date] = append(byDay[e.Date], e)
	}

	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	return byDay, dates
}

// groupByPeriod buckets entries under the period key derived from their
// date, preserving input order inside each bucket. Keys come back sorted
// ascending, which is chronological for the zero-padded key formats.
func groupByPeriod(entries []entry.Entry, keyOf func(string) (string, error)) (map[string][]entry.Entry, []string, error) {
	byPeriod := make(map[string][]entry.Entry)
	for _, e := range entries {
		key, err := keyOf(e.Date)
		if err != nil {
			return nil, nil, err
		}
		byPeriod[key] = append(byPeriod[key], e)
	}

	keys := make([]string, 0, len(byPeriod))
	for key := range byPeriod {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return byPeriod, keys, nil
}

func sortedKeys(m map[string]time.Duration) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// withPercentages attaches each project's share of total. A zero total
// leaves every percentage at zero.
func withPercentages(ranked []stats.ProjectStat, total time.Duration) []ProjectShare {
	shares := make([]ProjectShare, 0, len(ranked))
	for _, ps := range ranked {
		share := ProjectShare{Project: ps.Project, Duration: ps.Duration}
		if total > 0 {
			share.Percentage, _ = stats.Percentage(ps.Duration, total)
		}
		shares = append(shares, share)
	}
	return shares
}

// limit caps shares at n elements. Zero or negative n keeps everything.
func limit(shares []ProjectShare, n int) []ProjectShare {
	if n > 0 && len(shares) > n {
		return shares[:n]
	}
	return shares
}
