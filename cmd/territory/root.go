package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/bunkatopics/territory/internal/config"
	"github.com/bunkatopics/territory/internal/dataset"
	"github.com/bunkatopics/territory/internal/tui"
)

var version = "dev"

func rootCmd() *cobra.Command {
	var (
		logLevel string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "territory [dataset]",
		Short: "Terminal explorer for topic model exports",
		Long: `Territory opens a topic model export in a three-panel terminal UI:
the topic list on the left, the selected topic's card with its top
documents on the right, and a detail panel below it.

The dataset can be a JSON export, a SQLite database produced by
"territory ingest", or an http(s) URL serving the export. When no
dataset is given, the one from the config file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return runTUI(ref, logLevel, logFile)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Log file path (defaults to the config directory)")

	cmd.AddCommand(ingestCmd())
	cmd.AddCommand(topicsCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("territory %s\n", version)
		},
	})

	return cmd
}

func runTUI(ref, logLevel, logFile string) error {
	logger, closeLog, err := newLogger(logLevel, logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if ref == "" {
		ref = cfg.Dataset.Path
	}

	if ref == "" {
		// First run: collect a dataset reference via the setup flow.
		final, err := tea.NewProgram(tui.NewSetup(cfg)).Run()
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
		setup, ok := final.(tui.Setup)
		if !ok || !setup.Done() {
			// User cancelled; exit gracefully.
			return nil
		}
		ref = setup.Source().Ref
	}

	src, err := dataset.Resolve(ref)
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "dataset", src.String())

	if _, err := tea.NewProgram(tui.NewApp(cfg, src, logger)).Run(); err != nil {
		return err
	}
	return nil
}

// newLogger builds a slog logger writing to a file. The TUI owns the
// terminal, so logs never go to stdout or stderr.
func newLogger(level, path string) (*slog.Logger, func(), error) {
	if path == "" {
		path = filepath.Join(filepath.Dir(config.DefaultPath()), "territory.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler), func() { _ = f.Close() }, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
