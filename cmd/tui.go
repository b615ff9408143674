package cmd

import (
	"fmt"

	"github.com/evensen/toggltxt/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui <export.csv>",
	Short: "Browse the report in an interactive terminal UI",
	Long: `Launch the interactive terminal browser for a Toggl export.

Tabs:
  - Days:    per-day timelines with coalesced work blocks
  - Weeks:   ISO week summaries
  - Months:  calendar month summaries
  - Summary: the overall summary

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-4: Switch tabs
  - j/k or arrows: Select the period within a tab
  - PgUp/PgDn: Scroll the report view
  - r: Reload the export file
  - ?: Toggle help
  - q: Quit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI launches the interactive browser for the given export.
func runTUI(cmd *cobra.Command, path string) {
	if path == "-" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: The TUI cannot read from stdin")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass the export file path so it can be reloaded")
		deps.Exit(1)
		return
	}

	cfg, err := deps.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix or remove the config file, or regenerate it with 'toggltxt config init'")
		deps.Exit(1)
		return
	}

	f, ok := filterFromFlags(cmd)
	if !ok {
		return
	}

	if err := tui.Run(path, f, cfg); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run the TUI")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}
