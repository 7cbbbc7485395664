package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Explorer ExplorerConfig `yaml:"explorer"`
	Loading  LoadingConfig  `yaml:"loading"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ExplorerConfig holds the file explorer preferences.
type ExplorerConfig struct {
	Columns    int    `yaml:"columns"`             // 1 or 2
	ShowHidden bool   `yaml:"show_hidden"`         // List dot files
	StartDir   string `yaml:"start_dir,omitempty"` // Empty means the working directory
}

// LoadingConfig holds the loading indicator settings.
type LoadingConfig struct {
	Interval time.Duration `yaml:"interval"` // Time between spinner frames
	Message  string        `yaml:"message"`  // Text shown while a directory loads
}

// LoggingConfig holds the debug log settings. The screen belongs to the UI,
// so logs only ever go to a file.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error; empty disables logging
	File  string `yaml:"file,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Explorer: ExplorerConfig{
			Columns: 2,
		},
		Loading: LoadingConfig{
			Interval: 100 * time.Millisecond,
			Message:  "Loading directory...",
		},
	}
}

// Validate reports every invalid field in one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion))
	}
	if c.Explorer.Columns < 1 || c.Explorer.Columns > 2 {
		errs = append(errs, fmt.Errorf("explorer.columns must be 1 or 2, got %d", c.Explorer.Columns))
	}
	if c.Loading.Interval <= 0 {
		errs = append(errs, fmt.Errorf("loading.interval must be positive, got %s", c.Loading.Interval))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return errors.Join(errs...)
}

// ResolveStartDir returns the absolute directory the explorer opens in.
// A leading ~ expands to the home directory.
func (c *Config) ResolveStartDir() (string, error) {
	dir := c.Explorer.StartDir
	if dir == "" {
		return os.Getwd()
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory %q: %w", dir, err)
	}
	return abs, nil
}
