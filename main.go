package main

import (
	"os"

	"github.com/evensen/toggltxt/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaceable for testing main
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
