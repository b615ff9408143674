package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evensen/toggltxt/internal/config"
)

func TestRunMonthly_Basic(t *testing.T) {
	path := writeSampleExport(t)

	d, stdout, stderr := testDeps()
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly export.csv
	resetReportFlags(monthlyCmd)
	runMonthly(monthlyCmd, path)

	if stderr.Len() > 0 {
		t.Errorf("Unexpected stderr output: %s", stderr.String())
	}

	output := stdout.String()
	if !strings.Contains(output, "MONTHLY SUMMARIES") {
		t.Errorf("Expected section banner, got: %s", output)
	}
	if !strings.Contains(output, "MONTH 2024-01") {
		t.Error("Expected month 2024-01")
	}
	if !strings.Contains(output, "MONTH 2024-02") {
		t.Error("Expected month 2024-02")
	}
	if strings.Contains(output, "WEEKLY SUMMARIES") || strings.Contains(output, "OVERALL SUMMARY") {
		t.Error("Expected only monthly summaries in output")
	}

	resetReportFlags(monthlyCmd)
}

func TestRunMonthly_WeekRowsAndTotals(t *testing.T) {
	path := writeSampleExport(t)

	d, stdout, _ := testDeps()
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly export.csv
	resetReportFlags(monthlyCmd)
	runMonthly(monthlyCmd, path)

	output := stdout.String()
	// Week keys lose their year prefix inside a month
	if !strings.Contains(output, fmt.Sprintf("Week %-10s %15s", "W03", "5h")) {
		t.Errorf("Expected W03 week row, got: %s", output)
	}
	if !strings.Contains(output, fmt.Sprintf("Week %-10s %15s", "W05", "2h 15m")) {
		t.Errorf("Expected W05 week row, got: %s", output)
	}
	if !strings.Contains(output, "Month Total: 5h") {
		t.Errorf("Expected 'Month Total: 5h', got: %s", output)
	}
	if !strings.Contains(output, "Month Total: 2h 15m") {
		t.Errorf("Expected 'Month Total: 2h 15m', got: %s", output)
	}

	resetReportFlags(monthlyCmd)
}

func TestRunMonthly_AveragePerDay(t *testing.T) {
	path := writeSampleExport(t)

	d, stdout, _ := testDeps()
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly export.csv
	resetReportFlags(monthlyCmd)
	runMonthly(monthlyCmd, path)

	output := stdout.String()
	// January: 5h across 2 tracked days; February: 2h 15m across 1
	if !strings.Contains(output, "Average per day: 2h 30m") {
		t.Errorf("Expected January average 2h 30m, got: %s", output)
	}
	if !strings.Contains(output, "Average per day: 2h 15m") {
		t.Errorf("Expected February average 2h 15m, got: %s", output)
	}

	resetReportFlags(monthlyCmd)
}

func TestRunMonthly_TopFlagCapsProjects(t *testing.T) {
	path := writeSampleExport(t)

	d, stdout, _ := testDeps()
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly export.csv --top 1
	resetReportFlags(monthlyCmd)
	_ = monthlyCmd.Flags().Set("top", "1")
	runMonthly(monthlyCmd, path)

	output := stdout.String()
	if !strings.Contains(output, "Beta") {
		t.Error("Expected the top project to survive the cap")
	}
	if strings.Contains(output, "Alpha") {
		t.Errorf("Expected Alpha cut by --top 1, got: %s", output)
	}

	resetReportFlags(monthlyCmd)
}

func TestRunMonthly_ConfigCapsProjects(t *testing.T) {
	path := writeSampleExport(t)

	d, stdout, _ := testDeps()
	d.LoadConfig = func() (config.Config, error) {
		cfg := config.DefaultConfig()
		cfg.MonthTop = 1
		return cfg, nil
	}
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly export.csv with month_top = 1
	resetReportFlags(monthlyCmd)
	runMonthly(monthlyCmd, path)

	output := stdout.String()
	if !strings.Contains(output, "Beta") {
		t.Error("Expected the top project to survive the cap")
	}
	if strings.Contains(output, "Alpha") {
		t.Errorf("Expected Alpha cut by month_top = 1, got: %s", output)
	}

	resetReportFlags(monthlyCmd)
}

func TestRunMonthly_ReadError(t *testing.T) {
	exitCalled := false
	d, _, stderr := testDeps()
	d.Exit = func(code int) { exitCalled = true }
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly missing.csv
	resetReportFlags(monthlyCmd)
	runMonthly(monthlyCmd, filepath.Join(t.TempDir(), "missing.csv"))

	if !exitCalled {
		t.Error("Expected exit to be called for missing export")
	}
	if !strings.Contains(stderr.String(), "Failed to read the Toggl export") {
		t.Errorf("Expected read error, got: %s", stderr.String())
	}

	resetReportFlags(monthlyCmd)
}

func TestRunMonthly_ConfigError(t *testing.T) {
	path := writeSampleExport(t)

	exitCalled := false
	d, _, stderr := testDeps()
	d.Exit = func(code int) { exitCalled = true }
	d.LoadConfig = func() (config.Config, error) {
		return config.Config{}, fmt.Errorf("broken config")
	}
	SetDeps(d)
	defer ResetDeps()

	// Test: toggltxt monthly export.csv with a broken config file
	resetReportFlags(monthlyCmd)
	runMonthly(monthlyCmd, path)

	if !exitCalled {
		t.Error("Expected exit to be called for config error")
	}
	if !strings.Contains(stderr.String(), "Failed to load configuration") {
		t.Errorf("Expected config error, got: %s", stderr.String())
	}

	resetReportFlags(monthlyCmd)
}
