package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/vimterm/internal/config"
	"github.com/muurk/vimterm/internal/explorer"
	"github.com/muurk/vimterm/internal/logging"
	"github.com/muurk/vimterm/internal/ui"
	"github.com/muurk/vimterm/pkg/terminal"
)

// Explorer flags
var (
	columns    int
	showHidden bool
)

func init() {
	rootCmd.Flags().IntVarP(&columns, "columns", "c", 0, "Number of columns, 1 or 2 (default from config)")
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "a", false, "Show hidden files")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runExplorer(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.Explorer.StartDir = args[0]
	}
	if cmd.Flags().Changed("columns") {
		cfg.Explorer.Columns = columns
	}
	if cmd.Flags().Changed("hidden") {
		cfg.Explorer.ShowHidden = showHidden
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := cfg.ResolveStartDir()
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	t := terminal.Std()
	if err := requireTTY(t); err != nil {
		return err
	}

	logging.Debug("Starting explorer",
		zap.String("dir", dir),
		zap.Int("columns", cfg.Explorer.Columns),
		zap.Bool("hidden", cfg.Explorer.ShowHidden),
	)

	e := explorer.New(t, explorer.Options{
		StartDir:       dir,
		Columns:        cfg.Explorer.Columns,
		ShowHidden:     cfg.Explorer.ShowHidden,
		LoadingMessage: cfg.Loading.Message,
		Interval:       cfg.Loading.Interval,
		OnSignal:       exitOnSignal,
	})
	if err := e.Run(cmd.Context()); err != nil {
		return err
	}

	// Leave the shell on a fresh screen.
	return t.WriteString(terminal.ClearScreen)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	// Works even when the existing file does not parse.
	PersistentPreRunE: skipSetup,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Args:  cobra.NoArgs,
	// --force must be able to replace a broken file.
	PersistentPreRunE: skipSetup,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			if !isatty.IsTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			width, _ := terminal.Std().Size()
			if !ui.Confirm(os.Stdin, cmd.OutOrStdout(), width, "Config file exists",
				[]string{path, "Its settings will be replaced by the defaults."}, "Overwrite it?") {
				return nil
			}
		}
		if err := config.Default().SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}

func skipSetup(cmd *cobra.Command, args []string) error {
	return nil
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return filepath.Abs(configPath)
	}
	return config.GetConfigPath()
}
