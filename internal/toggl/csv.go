package toggl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/evensen/toggltxt/internal/entry"
)

// Column headers required in a Toggl Track CSV export. Columns are addressed
// by name, so exports with reordered or extra columns load fine.
const (
	colDate        = "Start date"
	colProject     = "Project"
	colDescription = "Description"
	colStartTime   = "Start time"
	colEndTime     = "End time"
	colDuration    = "Duration"
)

// utf8BOM is the byte order mark Toggl prepends to the header row.
const utf8BOM = "\uFEFF"

// ErrMissingColumn is returned when a required export column is absent.
var ErrMissingColumn = errors.New("missing required column")

// ReadFile reads a Toggl CSV export from disk.
func ReadFile(path string) ([]entry.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	defer func() { _ = file.Close() }()

	entries, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Read parses a Toggl CSV export. The first row is the header; a UTF-8 BOM
// on its first cell is stripped. Start and end times are cut down to HH:MM.
// Any malformed record aborts the read with an error carrying the record
// number. A header-only or empty export yields an empty slice.
func Read(r io.Reader) ([]entry.Entry, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return []entry.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	entries := []entry.Entry{}
	record := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		record++
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", record, err)
		}

		date := row[columns[colDate]]
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("record %d: invalid start date %q: expected YYYY-MM-DD", record, date)
		}

		duration, err := entry.ParseDuration(row[columns[colDuration]])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", record, err)
		}

		entries = append(entries, entry.Entry{
			Date:        date,
			Project:     row[columns[colProject]],
			Description: row[columns[colDescription]],
			Start:       clipTime(row[columns[colStartTime]]),
			End:         clipTime(row[columns[colEndTime]]),
			Duration:    duration,
		})
	}

	return entries, nil
}

// indexColumns maps header names to field positions and verifies every
// required column is present.
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	required := []string{colDate, colProject, colDescription, colStartTime, colEndTime, colDuration}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}

	return columns, nil
}

// clipTime reduces an export time value to HH:MM. Shorter values pass
// through unchanged.
func clipTime(value string) string {
	if len(value) > 5 {
		return value[:5]
	}
	return value
}
