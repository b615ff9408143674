package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "toggltxt"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// WeekTop caps the project breakdown of each week summary (0 shows all)
	WeekTop int `toml:"week_top"`
	// MonthTop caps the project breakdown of each month summary (0 shows all)
	MonthTop int `toml:"month_top"`
	// OverallTop caps the project breakdown of the overall summary (0 shows all)
	OverallTop int `toml:"overall_top"`
	// DescriptionWidth is the column descriptions are truncated to in the interactive browser
	DescriptionWidth int `toml:"description_width"`
	// Theme names the interactive browser color theme
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the standard report limits.
// - week_top: 10 projects per week summary
// - month_top: 7 projects per month summary
// - overall_top: 15 projects in the overall summary
// - description_width: 50 columns
// - theme: "dracula"
func DefaultConfig() Config {
	return Config{
		WeekTop:          10,
		MonthTop:         7,
		OverallTop:       15,
		DescriptionWidth: 50,
		Theme:            "dracula",
	}
}

// Normalize fills fields a hand-edited config file may leave empty.
func (c *Config) Normalize() {
	if c.Theme == "" {
		c.Theme = DefaultConfig().Theme
	}
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	if c.WeekTop < 0 {
		return fmt.Errorf("invalid week_top: must be zero or positive, got %d", c.WeekTop)
	}
	if c.MonthTop < 0 {
		return fmt.Errorf("invalid month_top: must be zero or positive, got %d", c.MonthTop)
	}
	if c.OverallTop < 0 {
		return fmt.Errorf("invalid overall_top: must be zero or positive, got %d", c.OverallTop)
	}
	if c.DescriptionWidth < 0 {
		return fmt.Errorf("invalid description_width: must be zero or positive, got %d", c.DescriptionWidth)
	}
	return nil
}

// Load reads and validates the configuration file at path. Values absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration file at path, falling back to the
// defaults when the file does not exist. A file that exists but cannot be
// read or parsed is an error, never silently replaced by defaults.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}

	return Load(path)
}

// Save writes the configuration to path as TOML.
func Save(path string, cfg Config) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}

// GenerateSampleConfig returns a commented config file body carrying the
// default values, for `config init`.
func GenerateSampleConfig() string {
	return `# toggltxt configuration file
#
# Location:
#   ~/.config/toggltxt/config.toml     Linux/macOS
#   %APPDATA%\toggltxt\config.toml     Windows
#
# Every setting is optional; missing settings keep their defaults.

# Number of projects listed in each week summary. 0 shows all projects.
week_top = 10

# Number of projects listed in each month summary. 0 shows all projects.
month_top = 7

# Number of projects listed in the overall summary. 0 shows all projects.
overall_top = 15

# Column the interactive browser truncates long descriptions at.
description_width = 50

# Color theme for the interactive browser.
# Any tint name works, e.g. "dracula", "nord", "gruvbox", "tokyo-night".
theme = "dracula"
`
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := paths.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := paths.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}
