package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/evensen/toggltxt/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the current effective configuration for toggltxt.

Shows the configuration file location, whether it exists, and the settings
in effect. Values from the config file are merged with defaults.

toggltxt works without any configuration file. All settings have defaults:
  - week_top = 10            Projects listed per weekly summary (0 = all)
  - month_top = 7            Projects listed per monthly summary (0 = all)
  - overall_top = 15         Projects listed in the overall summary (0 = all)
  - description_width = 50   Description truncation width in the TUI
  - theme = "dracula"        TUI color theme

Configuration file location:
  ~/.config/toggltxt/config.toml       Linux/macOS
  %APPDATA%\toggltxt\config.toml       Windows

Run 'toggltxt config init' to create a sample file.`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	Long: `Create a sample configuration file with every setting documented and
set to its default. Asks before overwriting an existing file.`,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for toggltxt")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:          %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:               File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:               No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Week top projects:    %s\n", formatLimit(cfg.WeekTop))
	_, _ = fmt.Fprintf(deps.Stdout, "Month top projects:   %s\n", formatLimit(cfg.MonthTop))
	_, _ = fmt.Fprintf(deps.Stdout, "Overall top projects: %s\n", formatLimit(cfg.OverallTop))
	_, _ = fmt.Fprintf(deps.Stdout, "Description width:    %d\n", cfg.DescriptionWidth)
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:                %s\n", cfg.Theme)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'toggltxt config init' to create a sample config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// formatLimit renders a ranked-list limit, where zero means unlimited.
func formatLimit(n int) string {
	if n == 0 {
		return "all"
	}
	return fmt.Sprintf("%d", n)
}

// initConfig writes a sample configuration file, prompting before overwrite.
func initConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Config file already exists: %s\n", configPath)
		_, _ = fmt.Fprint(deps.Stdout, "Overwrite with the sample configuration? [y/N]: ")
		if !promptOverwriteConfirmation() {
			_, _ = fmt.Fprintln(deps.Stdout, "Cancelled. Existing configuration preserved.")
			return
		}
	}

	if err := os.WriteFile(configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created sample configuration file: %s\n", configPath)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Next steps:")
	_, _ = fmt.Fprintln(deps.Stdout, "  1. Open the file and adjust the settings you want to change")
	_, _ = fmt.Fprintln(deps.Stdout, "  2. Run 'toggltxt config' to verify the effective configuration")
}

// promptOverwriteConfirmation reads a yes/no answer from stdin.
// Only 'y' or 'Y' confirms; anything else declines.
func promptOverwriteConfirmation() bool {
	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.TrimSpace(scanner.Text())
	return answer == "y" || answer == "Y"
}
