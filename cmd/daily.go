package cmd

import (
	"github.com/evensen/toggltxt/internal/cli"
	"github.com/evensen/toggltxt/internal/report"
	"github.com/spf13/cobra"
)

// dailyCmd represents the daily command
var dailyCmd = &cobra.Command{
	Use:   "daily <export.csv>",
	Short: "Print per-day timelines with coalesced work blocks",
	Long: `Print one timeline per day: consecutive entries for the same project are
coalesced into work blocks, followed by the day's total and a per-project
breakdown.

Examples:
  toggltxt daily export.csv
  toggltxt daily export.csv --project Alpha
  toggltxt daily export.csv --from 2024-01-01 --to 2024-01-31`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDaily(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

// runDaily renders the daily timelines for the given export.
func runDaily(cmd *cobra.Command, path string) {
	entries, ok := loadEntries(cmd, path)
	if !ok {
		return
	}
	cli.RenderDaily(deps.Stdout, report.BuildDaily(entries))
}
