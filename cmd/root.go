package cmd

import (
	"fmt"

	"github.com/evensen/toggltxt/internal/cli"
	"github.com/evensen/toggltxt/internal/entry"
	"github.com/evensen/toggltxt/internal/filter"
	"github.com/evensen/toggltxt/internal/report"
	"github.com/evensen/toggltxt/internal/timeutil"
	"github.com/evensen/toggltxt/internal/toggl"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toggltxt <export.csv>",
	Short: "Turn Toggl CSV exports into plain text timeline reports",
	Long: `toggltxt reads a Toggl Track CSV export and prints hierarchical plain
text reports: per-day timelines with coalesced work blocks, weekly and
monthly summaries, and an overall summary.

Usage:
  toggltxt export.csv                  Full report (daily, weekly, monthly, overall)
  toggltxt daily export.csv            Daily timelines only
  toggltxt weekly export.csv           Weekly summaries only
  toggltxt monthly export.csv          Monthly summaries only
  toggltxt summary export.csv          Overall summary only
  toggltxt tui export.csv              Interactive report browser
  toggltxt - < export.csv              Read the export from stdin

Filters (apply to every command):
  --project <name>                     Keep entries for one project (exact match)
  --from / --to YYYY-MM-DD             Keep entries inside a date window (inclusive)

The export must carry the columns "Start date", "Project", "Description",
"Start time", "End time" and "Duration". Extra columns are ignored.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFullReport(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().String("project", "", "Only include entries for this project (exact match)")
	rootCmd.PersistentFlags().String("from", "", "Only include entries on or after this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("to", "", "Only include entries on or before this date (YYYY-MM-DD)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"toggltxt version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runFullReport renders the complete report for the given export.
func runFullReport(cmd *cobra.Command, path string) {
	rep, ok := buildFullReport(cmd, path)
	if !ok {
		return
	}
	cli.RenderReport(deps.Stdout, rep)
}

// buildFullReport loads the export and assembles every report section.
func buildFullReport(cmd *cobra.Command, path string) (report.Report, bool) {
	entries, ok := loadEntries(cmd, path)
	if !ok {
		return report.Report{}, false
	}

	limits, ok := reportLimits(cmd)
	if !ok {
		return report.Report{}, false
	}

	rep, err := report.Build(entries, limits)
	if err != nil {
		reportAssembleError(err)
		return report.Report{}, false
	}
	return rep, true
}

// loadEntries reads the export named by path ("-" means stdin) and applies
// the persistent filter flags.
func loadEntries(cmd *cobra.Command, path string) ([]entry.Entry, bool) {
	var entries []entry.Entry
	var err error
	if path == "-" {
		entries, err = toggl.Read(deps.Stdin)
	} else {
		entries, err = toggl.ReadFile(path)
	}
	if err != nil {
		reportReadError(err, path)
		return nil, false
	}

	f, ok := filterFromFlags(cmd)
	if !ok {
		return nil, false
	}
	return filter.FilterEntries(entries, f), true
}

// filterFromFlags builds the entry filter from the persistent flags.
// Date flags accept YYYY-MM-DD or DD/MM/YYYY and are normalized to ISO form.
func filterFromFlags(cmd *cobra.Command) (*filter.Filter, bool) {
	project, _ := cmd.Root().PersistentFlags().GetString("project")
	from, _ := cmd.Root().PersistentFlags().GetString("from")
	to, _ := cmd.Root().PersistentFlags().GetString("to")

	if from != "" {
		normalized, err := timeutil.ParseReportDate(from)
		if err != nil {
			reportDateFlagError("--from", from, err)
			return nil, false
		}
		from = normalized
	}
	if to != "" {
		normalized, err := timeutil.ParseReportDate(to)
		if err != nil {
			reportDateFlagError("--to", to, err)
			return nil, false
		}
		to = normalized
	}

	return filter.NewFilter(project, from, to), true
}

// reportLimits resolves the ranked-list limits from the config file, letting
// an explicit --top flag override all of them.
func reportLimits(cmd *cobra.Command) (report.Limits, bool) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix or remove the config file, or regenerate it with 'toggltxt config init'")
		deps.Exit(1)
		return report.Limits{}, false
	}

	limits := report.Limits{
		WeekTop:    cfg.WeekTop,
		MonthTop:   cfg.MonthTop,
		OverallTop: cfg.OverallTop,
	}
	if flag := cmd.Flags().Lookup("top"); flag != nil && flag.Changed {
		top, _ := cmd.Flags().GetInt("top")
		limits.WeekTop = top
		limits.MonthTop = top
		limits.OverallTop = top
	}
	return limits, true
}
