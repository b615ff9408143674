package cmd

import (
	"github.com/evensen/toggltxt/internal/cli"
	"github.com/evensen/toggltxt/internal/report"
	"github.com/spf13/cobra"
)

// weeklyCmd represents the weekly command
var weeklyCmd = &cobra.Command{
	Use:   "weekly <export.csv>",
	Short: "Print per-ISO-week summaries",
	Long: `Print one summary per ISO week: day totals, the week total, and the top
projects by tracked time.

Weeks follow ISO-8601 numbering, so days around New Year may belong to a
week of the neighboring year.

Examples:
  toggltxt weekly export.csv
  toggltxt weekly export.csv --top 5
  toggltxt weekly export.csv --project Alpha`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWeekly(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(weeklyCmd)
	weeklyCmd.Flags().Int("top", 0, "Number of projects to list per week (overrides config, 0 = all)")
}

// runWeekly renders the weekly summaries for the given export.
func runWeekly(cmd *cobra.Command, path string) {
	entries, ok := loadEntries(cmd, path)
	if !ok {
		return
	}
	limits, ok := reportLimits(cmd)
	if !ok {
		return
	}
	weeks, err := report.BuildWeekly(entries, limits.WeekTop)
	if err != nil {
		reportAssembleError(err)
		return
	}
	cli.RenderWeekly(deps.Stdout, weeks)
}
