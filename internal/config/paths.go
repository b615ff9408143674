package config

import "os"

// PathProvider abstracts the OS calls behind config-path resolution.
// Used to enable testing of error paths in GetConfigPath.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// osPathProvider resolves paths with the real OS functions.
type osPathProvider struct{}

func (osPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (osPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// paths is the provider GetConfigPath resolves through.
var paths PathProvider = osPathProvider{}

// SetPathProvider sets a custom path provider (for testing).
func SetPathProvider(p PathProvider) {
	paths = p
}

// ResetPathProvider restores the OS-backed path provider.
func ResetPathProvider() {
	paths = osPathProvider{}
}
