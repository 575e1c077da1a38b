package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rrtop/internal/config"
	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/rileyhilliard/rrtop/internal/logger"
	"github.com/rileyhilliard/rrtop/internal/metrics"
	"github.com/rileyhilliard/rrtop/internal/monitor"
	"golang.org/x/term"
)

// DefaultDebugLogFile receives logs when RRTOP_DEBUG is set without --log-file.
const DefaultDebugLogFile = "rrtop-debug.log"

// Swapped out in tests.
var (
	isTerminal = term.IsTerminal
	newSource  = func() metrics.Source { return metrics.NewCollector(logger.NewEnvLogger("[metrics]")) }
	runMonitor = func(ctx context.Context, src metrics.Source, opts monitor.Options) error {
		return monitor.Run(ctx, src, opts)
	}
)

// monitorCommand starts the TUI dashboard against the local machine.
func monitorCommand(ctx context.Context, cfg *config.Config) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"rrtop needs an interactive terminal",
			"Run it directly in a terminal, or use 'rrtop snapshot' for one-off output.")
	}

	closeLog, err := setupLogging(cfg.LogFile, logger.DebugEnabled())
	if err != nil {
		return err
	}
	defer closeLog()

	opts := monitor.Options{
		Interval: cfg.Interval,
		Limit:    cfg.Limit,
		Logger:   logger.NewEnvLogger("[monitor]"),
	}
	return runMonitor(ctx, newSource(), opts)
}

// setupLogging points the standard logger somewhere that won't draw over the
// dashboard. With no path and debug off, logs are discarded. The returned
// func restores stderr output.
func setupLogging(path string, debug bool) (func(), error) {
	restore := func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}

	if path == "" && !debug {
		log.SetOutput(io.Discard)
		return restore, nil
	}
	if path == "" {
		path = DefaultDebugLogFile
	}

	f, err := tea.LogToFile(path, "rrtop")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't open log file %s", path),
			"Check the directory exists and is writable, or pick another --log-file.")
	}
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
