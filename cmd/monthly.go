package cmd

import (
	"github.com/evensen/toggltxt/internal/cli"
	"github.com/evensen/toggltxt/internal/report"
	"github.com/spf13/cobra"
)

// monthlyCmd represents the monthly command
var monthlyCmd = &cobra.Command{
	Use:   "monthly <export.csv>",
	Short: "Print per-month summaries",
	Long: `Print one summary per calendar month: week totals, the month total, the
average tracked time per active day, and the top projects.

Examples:
  toggltxt monthly export.csv
  toggltxt monthly export.csv --top 3
  toggltxt monthly export.csv --from 2024-01-01`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMonthly(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
	monthlyCmd.Flags().Int("top", 0, "Number of projects to list per month (overrides config, 0 = all)")
}

// runMonthly renders the monthly summaries for the given export.
func runMonthly(cmd *cobra.Command, path string) {
	entries, ok := loadEntries(cmd, path)
	if !ok {
		return
	}
	limits, ok := reportLimits(cmd)
	if !ok {
		return
	}
	months, err := report.BuildMonthly(entries, limits.MonthTop)
	if err != nil {
		reportAssembleError(err)
		return
	}
	cli.RenderMonthly(deps.Stdout, months)
}
