package cmd

import (
	"fmt"
)

// reportReadError reports a failure to read or parse the export and exits.
func reportReadError(err error, path string) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read the Toggl export")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	if path == "-" {
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pipe a CSV export into stdin when using '-'")
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass a CSV file exported from Toggl Track, or '-' for stdin")
	}
	deps.Exit(1)
}

// reportDateFlagError reports an unusable date flag value and exits.
func reportDateFlagError(flag, value string, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid %s date '%s'\n", flag, value)
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintf(deps.Stderr, "Hint: Use YYYY-MM-DD, e.g. %s 2024-01-15\n", flag)
	deps.Exit(1)
}

// reportAssembleError reports a report assembly failure and exits.
func reportAssembleError(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to assemble the report")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check the export for malformed start dates")
	deps.Exit(1)
}
