package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/evensen/toggltxt/internal/entry"
)

// ErrZeroTotal is returned by Percentage when the reference total is zero.
var ErrZeroTotal = errors.New("total duration is zero")

// ProjectStat contains the accumulated duration for a single project
type ProjectStat struct {
	Project  string
	Duration time.Duration
}

// SumDurations returns the sum of all entry durations
func SumDurations(entries []entry.Entry) time.Duration {
	var total time.Duration
	for _, e := range entries {
		total += e.Duration
	}
	return total
}

// GroupDurations sums entry durations under the key produced by keyFn.
// The first key derivation error aborts the grouping.
func GroupDurations(entries []entry.Entry, keyFn func(entry.Entry) (string, error)) (map[string]time.Duration, error) {
	grouped := make(map[string]time.Duration)

	for _, e := range entries {
		key, err := keyFn(e)
		if err != nil {
			return nil, err
		}
		grouped[key] += e.Duration
	}

	return grouped, nil
}

// CalculateProjectStats aggregates entry durations by project and returns the
// overall total together with the per-project breakdown sorted by duration
// descending. Projects with equal durations keep the order in which they
// first appear in the input.
func CalculateProjectStats(entries []entry.Entry) (time.Duration, []ProjectStat) {
	if len(entries) == 0 {
		return 0, []ProjectStat{}
	}

	totals := make(map[string]time.Duration)
	var order []string

	for _, e := range entries {
		if _, seen := totals[e.Project]; !seen {
			order = append(order, e.Project)
		}
		totals[e.Project] += e.Duration
	}

	stats := make([]ProjectStat, 0, len(order))
	for _, project := range order {
		stats = append(stats, ProjectStat{Project: project, Duration: totals[project]})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Duration > stats[j].Duration
	})

	return SumDurations(entries), stats
}

// Percentage returns part as a percentage of total, unrounded.
func Percentage(part, total time.Duration) (float64, error) {
	if total == 0 {
		return 0, ErrZeroTotal
	}
	return part.Seconds() / total.Seconds() * 100, nil
}

// DistinctDays counts the number of distinct entry dates
func DistinctDays(entries []entry.Entry) int {
	days := make(map[string]bool)
	for _, e := range entries {
		days[e.Date] = true
	}
	return len(days)
}

// AveragePerDay divides total across the distinct days covered by entries.
// Returns zero when there are no entries.
func AveragePerDay(total time.Duration, entries []entry.Entry) time.Duration {
	days := DistinctDays(entries)
	if days == 0 {
		return 0
	}
	return total / time.Duration(days)
}
