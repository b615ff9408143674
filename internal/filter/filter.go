package filter

import (
	"github.com/evensen/toggltxt/internal/entry"
)

// Filter narrows an export to the entries a report should cover.
// All fields are optional - zero values match all entries.
type Filter struct {
	Project string // Exact project name match
	From    string // Earliest entry date, YYYY-MM-DD, inclusive
	To      string // Latest entry date, YYYY-MM-DD, inclusive
}

// NewFilter creates a new Filter with the given criteria.
// All parameters are optional - pass empty values to match all entries.
func NewFilter(project, from, to string) *Filter {
	return &Filter{
		Project: project,
		From:    from,
		To:      to,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return f.Project == "" && f.From == "" && f.To == ""
}

// FilterEntries returns a new slice containing only entries that match the
// filter criteria, in their original order. If the filter is empty, returns
// all entries.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesProject returns true if the entry's project exactly matches the
// filter project. An empty project filter matches all entries.
func (f *Filter) MatchesProject(e entry.Entry) bool {
	if f.Project == "" {
		return true
	}
	return e.Project == f.Project
}

// MatchesDateRange returns true if the entry date falls inside the filter
// window. The zero-padded YYYY-MM-DD form makes plain string comparison
// chronological. Open boundaries match all entries on that side.
func (f *Filter) MatchesDateRange(e entry.Entry) bool {
	if f.From != "" && e.Date < f.From {
		return false
	}
	if f.To != "" && e.Date > f.To {
		return false
	}
	return true
}

// Matches returns true if the entry satisfies every filter criterion.
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesProject(e) && f.MatchesDateRange(e)
}
