package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evensen/toggltxt/cmd"
	"github.com/evensen/toggltxt/internal/config"
)

// writeExportFixture writes a minimal valid Toggl export and returns its path.
func writeExportFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	data := "Start date,Project,Description,Start time,End time,Duration\n" +
		"2024-01-15,Alpha,task1,09:00:00,10:00:00,1:00:00\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// silenceCommands routes command output into buffers for the duration of a test.
func silenceCommands(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetDeps(&cmd.Deps{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(""),
		Exit:   func(code int) {},
		LoadConfig: func() (config.Config, error) {
			return config.DefaultConfig(), nil
		},
	})
	t.Cleanup(cmd.ResetDeps)
	return stdout, stderr
}

func TestRun_Success(t *testing.T) {
	stdout, _ := silenceCommands(t)

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"toggltxt", writeExportFixture(t)}

	code := run()
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "OVERALL SUMMARY") {
		t.Errorf("Expected full report output, got: %s", stdout.String())
	}
}

func TestRun_ExecuteError(t *testing.T) {
	silenceCommands(t)

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"toggltxt", "--unknownflag"}

	code := run()
	if code != 1 {
		t.Errorf("Expected exit code 1 for Execute error, got %d", code)
	}
}

func TestMain_CallsExitWithRunResult(t *testing.T) {
	silenceCommands(t)

	originalExit := exitFunc
	originalArgs := os.Args
	defer func() {
		exitFunc = originalExit
		os.Args = originalArgs
	}()

	var capturedCode int
	exitFunc = func(code int) {
		capturedCode = code
	}
	os.Args = []string{"toggltxt", writeExportFixture(t)}

	main()

	if capturedCode != 0 {
		t.Errorf("Expected exit code 0, got %d", capturedCode)
	}
}
