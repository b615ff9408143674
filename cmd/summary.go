package cmd

import (
	"github.com/evensen/toggltxt/internal/cli"
	"github.com/evensen/toggltxt/internal/report"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary <export.csv>",
	Short: "Print the overall summary",
	Long: `Print the summary covering the whole export: the number of tracked days,
the total tracked time, the average per day, and the top projects.

Examples:
  toggltxt summary export.csv
  toggltxt summary export.csv --top 20
  toggltxt summary export.csv --project Alpha`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSummary(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().Int("top", 0, "Number of projects to list (overrides config, 0 = all)")
}

// runSummary renders the overall summary for the given export.
func runSummary(cmd *cobra.Command, path string) {
	entries, ok := loadEntries(cmd, path)
	if !ok {
		return
	}
	limits, ok := reportLimits(cmd)
	if !ok {
		return
	}
	cli.RenderOverall(deps.Stdout, report.BuildOverall(entries, limits.OverallTop))
}
