// Vimterm is a terminal file explorer driven by vim keys or arrows, and the
// reference host for the vimterm toolkit packages.
//
// Usage:
//
//	vimterm [dir] [flags]
//	vimterm keys
//	vimterm config path|show|init
//	vimterm version
//
// Running without a subcommand opens the explorer in dir, or in the
// configured start directory, or in the working directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/muurk/vimterm/internal/config"
	"github.com/muurk/vimterm/internal/logging"
	"github.com/muurk/vimterm/internal/version"
	"github.com/muurk/vimterm/pkg/terminal"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
)

// cfg is loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vimterm [dir]",
	Short: "Terminal file explorer with vim-style navigation",
	Long: `Browse directories with h/j/k/l or the arrow keys.

Enter opens a directory, Backspace goes back, Space refreshes and q quits.
Settings are read from the config file (see 'vimterm config path') and can
be overridden with flags.`,
	Version:           version.Full(),
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE:              runExplorer,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the per-user config path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config or $"+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default from config, else vimterm.log in the config directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and starts logging. Flags override the file.
func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	level := firstNonEmpty(logLevel, cfg.Logging.Level, os.Getenv(logging.LogLevelEnvVar))
	file := firstNonEmpty(logFile, cfg.Logging.File, os.Getenv(logging.LogFileEnvVar))
	if level != "" && file == "" {
		// The screen belongs to the UI, so never log to the terminal.
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file = filepath.Join(dir, "vimterm.log")
	}
	return logging.Initialize(level, file)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// requireTTY checks both ends of t: raw mode needs a terminal on stdin and
// the full-screen drawing needs one on stdout.
func requireTTY(t *terminal.Terminal) error {
	if !t.IsTerminal() {
		return fmt.Errorf("stdin is not a terminal")
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	return nil
}

// exitOnSignal ends the process with the shell's 128+n convention once the
// terminal has been restored.
func exitOnSignal(sig os.Signal) {
	logging.Sync()
	code := 130
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	os.Exit(code)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get())
	},
}
