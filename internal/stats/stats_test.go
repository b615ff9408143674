package stats

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/evensen/toggltxt/internal/entry"
)

// Helper function to create an entry with the fields aggregation cares about
func makeEntry(date, project string, duration time.Duration) entry.Entry {
	return entry.Entry{
		Date:     date,
		Project:  project,
		Duration: duration,
	}
}

func TestSumDurations(t *testing.T) {
	tests := []struct {
		name     string
		entries  []entry.Entry
		expected time.Duration
	}{
		{
			name:     "empty entries",
			entries:  []entry.Entry{},
			expected: 0,
		},
		{
			name: "single entry",
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", 2*time.Hour),
			},
			expected: 2 * time.Hour,
		},
		{
			name: "multiple entries accumulate",
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", 2*time.Hour),
				makeEntry("2024-01-15", "Beta", 90*time.Minute),
				makeEntry("2024-01-16", "Alpha", 45*time.Second),
			},
			expected: 3*time.Hour + 30*time.Minute + 45*time.Second,
		},
		{
			name: "zero durations contribute nothing",
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", 0),
				makeEntry("2024-01-15", "Beta", time.Hour),
			},
			expected: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SumDurations(tt.entries)
			if result != tt.expected {
				t.Errorf("SumDurations() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGroupDurations(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("2024-01-15", "Alpha", time.Hour),
		makeEntry("2024-01-15", "Beta", 30*time.Minute),
		makeEntry("2024-01-16", "Alpha", 2*time.Hour),
	}

	byDate := func(e entry.Entry) (string, error) { return e.Date, nil }

	grouped, err := GroupDurations(entries, byDate)
	if err != nil {
		t.Fatalf("GroupDurations() unexpected error: %v", err)
	}

	if len(grouped) != 2 {
		t.Fatalf("GroupDurations() returned %d groups, expected 2", len(grouped))
	}
	if grouped["2024-01-15"] != 90*time.Minute {
		t.Errorf("grouped[2024-01-15] = %v, expected %v", grouped["2024-01-15"], 90*time.Minute)
	}
	if grouped["2024-01-16"] != 2*time.Hour {
		t.Errorf("grouped[2024-01-16] = %v, expected %v", grouped["2024-01-16"], 2*time.Hour)
	}
}

func TestGroupDurations_KeyError(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("2024-01-15", "Alpha", time.Hour),
		makeEntry("bad-date", "Beta", time.Hour),
	}

	keyErr := errors.New("unusable key")
	keyFn := func(e entry.Entry) (string, error) {
		if e.Date == "bad-date" {
			return "", keyErr
		}
		return e.Date, nil
	}

	grouped, err := GroupDurations(entries, keyFn)
	if err == nil {
		t.Fatalf("GroupDurations() expected error, got groups: %v", grouped)
	}
	if !errors.Is(err, keyErr) {
		t.Errorf("GroupDurations() error = %v, expected %v", err, keyErr)
	}
	if grouped != nil {
		t.Errorf("GroupDurations() expected nil map on error, got %v", grouped)
	}
}

func TestGroupDurations_Empty(t *testing.T) {
	grouped, err := GroupDurations([]entry.Entry{}, func(e entry.Entry) (string, error) { return e.Date, nil })
	if err != nil {
		t.Fatalf("GroupDurations() unexpected error: %v", err)
	}
	if len(grouped) != 0 {
		t.Errorf("GroupDurations() returned %d groups, expected 0", len(grouped))
	}
}

func TestCalculateProjectStats(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("2024-01-15", "Alpha", time.Hour),
		makeEntry("2024-01-15", "Beta", 3*time.Hour),
		makeEntry("2024-01-16", "Alpha", 30*time.Minute),
		makeEntry("2024-01-16", "Gamma", 2*time.Hour),
	}

	total, stats := CalculateProjectStats(entries)

	if total != 6*time.Hour+30*time.Minute {
		t.Errorf("total = %v, expected %v", total, 6*time.Hour+30*time.Minute)
	}

	expected := []ProjectStat{
		{Project: "Beta", Duration: 3 * time.Hour},
		{Project: "Gamma", Duration: 2 * time.Hour},
		{Project: "Alpha", Duration: time.Hour + 30*time.Minute},
	}
	if len(stats) != len(expected) {
		t.Fatalf("stats has %d projects, expected %d", len(stats), len(expected))
	}
	for i, exp := range expected {
		if stats[i] != exp {
			t.Errorf("stats[%d] = %+v, expected %+v", i, stats[i], exp)
		}
	}
}

func TestCalculateProjectStats_TiesKeepFirstSeenOrder(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("2024-01-15", "Zulu", time.Hour),
		makeEntry("2024-01-15", "Alpha", time.Hour),
		makeEntry("2024-01-15", "Mike", time.Hour),
	}

	_, stats := CalculateProjectStats(entries)

	expectedOrder := []string{"Zulu", "Alpha", "Mike"}
	if len(stats) != len(expectedOrder) {
		t.Fatalf("stats has %d projects, expected %d", len(stats), len(expectedOrder))
	}
	for i, project := range expectedOrder {
		if stats[i].Project != project {
			t.Errorf("stats[%d].Project = %q, expected %q", i, stats[i].Project, project)
		}
	}
}

func TestCalculateProjectStats_Empty(t *testing.T) {
	total, stats := CalculateProjectStats([]entry.Entry{})

	if total != 0 {
		t.Errorf("total = %v, expected 0", total)
	}
	if len(stats) != 0 {
		t.Errorf("stats has %d projects, expected 0", len(stats))
	}
}

func TestCalculateProjectStats_EmptyProjectNameKept(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("2024-01-15", "", time.Hour),
		makeEntry("2024-01-15", "Alpha", 30*time.Minute),
	}

	_, stats := CalculateProjectStats(entries)

	if len(stats) != 2 {
		t.Fatalf("stats has %d projects, expected 2", len(stats))
	}
	if stats[0].Project != "" {
		t.Errorf("stats[0].Project = %q, expected empty string", stats[0].Project)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     time.Duration
		total    time.Duration
		expected float64
	}{
		{"half", time.Hour, 2 * time.Hour, 50.0},
		{"full", 2 * time.Hour, 2 * time.Hour, 100.0},
		{"zero part", 0, 2 * time.Hour, 0.0},
		{"three eighths", 45 * time.Minute, 2 * time.Hour, 37.5},
		{"over hundred", 3 * time.Hour, 2 * time.Hour, 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Percentage(tt.part, tt.total)
			if err != nil {
				t.Fatalf("Percentage(%v, %v) unexpected error: %v", tt.part, tt.total, err)
			}
			if result != tt.expected {
				t.Errorf("Percentage(%v, %v) = %v, expected %v", tt.part, tt.total, result, tt.expected)
			}
		})
	}
}

func TestPercentage_ZeroTotal(t *testing.T) {
	_, err := Percentage(time.Hour, 0)
	if err == nil {
		t.Fatalf("Percentage() expected error for zero total, got nil")
	}
	if !errors.Is(err, ErrZeroTotal) {
		t.Errorf("Percentage() error = %v, expected ErrZeroTotal", err)
	}
}

func TestDistinctDays(t *testing.T) {
	tests := []struct {
		name     string
		entries  []entry.Entry
		expected int
	}{
		{
			name:     "empty entries",
			entries:  []entry.Entry{},
			expected: 0,
		},
		{
			name: "single day",
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", time.Hour),
				makeEntry("2024-01-15", "Beta", time.Hour),
			},
			expected: 1,
		},
		{
			name: "multiple days",
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", time.Hour),
				makeEntry("2024-01-16", "Alpha", time.Hour),
				makeEntry("2024-01-15", "Beta", time.Hour),
				makeEntry("2024-01-19", "Alpha", time.Hour),
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DistinctDays(tt.entries)
			if result != tt.expected {
				t.Errorf("DistinctDays() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestAveragePerDay(t *testing.T) {
	tests := []struct {
		name     string
		total    time.Duration
		entries  []entry.Entry
		expected time.Duration
	}{
		{
			name:     "no entries",
			total:    0,
			entries:  []entry.Entry{},
			expected: 0,
		},
		{
			name:  "single day",
			total: 5 * time.Hour,
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", 5*time.Hour),
			},
			expected: 5 * time.Hour,
		},
		{
			name:  "even split across days",
			total: 6 * time.Hour,
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", 4*time.Hour),
				makeEntry("2024-01-16", "Alpha", 2*time.Hour),
			},
			expected: 3 * time.Hour,
		},
		{
			name:  "repeated dates count once",
			total: 4 * time.Hour,
			entries: []entry.Entry{
				makeEntry("2024-01-15", "Alpha", time.Hour),
				makeEntry("2024-01-15", "Beta", time.Hour),
				makeEntry("2024-01-16", "Alpha", 2*time.Hour),
			},
			expected: 2 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AveragePerDay(tt.total, tt.entries)
			if result != tt.expected {
				t.Errorf("AveragePerDay(%v) = %v, expected %v", tt.total, result, tt.expected)
			}
		})
	}
}

func TestCalculateProjectStats_ManyProjects(t *testing.T) {
	// Ranking stays duration descending across a larger spread
	var entries []entry.Entry
	for i := 1; i <= 20; i++ {
		project := fmt.Sprintf("Project-%02d", i)
		entries = append(entries, makeEntry("2024-01-15", project, time.Duration(i)*time.Minute))
	}

	_, stats := CalculateProjectStats(entries)

	if len(stats) != 20 {
		t.Fatalf("stats has %d projects, expected 20", len(stats))
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].Duration > stats[i-1].Duration {
			t.Errorf("stats not sorted descending at index %d: %v > %v",
				i, stats[i].Duration, stats[i-1].Duration)
		}
	}
	if stats[0].Project != "Project-20" {
		t.Errorf("stats[0].Project = %q, expected %q", stats[0].Project, "Project-20")
	}
}
