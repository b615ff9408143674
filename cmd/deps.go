package cmd

import (
	"io"
	"os"

	"github.com/evensen/toggltxt/internal/config"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	LoadConfig func() (config.Config, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		LoadConfig: loadUserConfig,
	}
}

// loadUserConfig loads the user's config file, falling back to defaults when
// the config location cannot be resolved or the file does not exist.
// A malformed config file is an error.
func loadUserConfig() (config.Config, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	return config.LoadOrDefault(path)
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
