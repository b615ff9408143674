package entry

import "strings"

// CoalesceConsecutive merges adjacent entries that share a project into
// single work blocks. Entries must already be in chronological order within
// one day; the function never sorts, and never merges two same-project
// entries separated by an entry from a different project.
//
// A block keeps the Start of its first entry, takes the End of its last,
// sums the durations, and merges the descriptions.
func CoalesceConsecutive(entries []Entry) []Entry {
	if len(entries) == 0 {
		return []Entry{}
	}

	blocks := make([]Entry, 0, len(entries))
	current := entries[0]

	for _, e := range entries[1:] {
		if e.Project == current.Project {
			current.End = e.End
			current.Duration += e.Duration
			current.Description = MergeDescriptions(current.Description, e.Description)
			continue
		}
		blocks = append(blocks, current)
		current = e
	}

	return append(blocks, current)
}

// MergeDescriptions combines a work block's description with that of a newly
// merged entry. An empty addition leaves the block unchanged, as does one
// already contained anywhere in the block's text.
func MergeDescriptions(current, next string) string {
	if current == "" && next != "" {
		return next
	}
	if next != "" && !strings.Contains(current, next) {
		return current + "; " + next
	}
	return current
}
