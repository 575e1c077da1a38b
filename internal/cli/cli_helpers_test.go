package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rileyhilliard/rrtop/internal/metrics"
	"github.com/rileyhilliard/rrtop/internal/monitor"
	"github.com/spf13/pflag"
)

// resetRootCmd puts the package-level command tree back to its defaults
// after a test drives it through execute.
func resetRootCmd(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd.PersistentFlags())
		resetFlags(snapshotCmd.Flags())
		resetFlags(versionCmd.Flags())
	})
	return &out
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// stubMonitor replaces the terminal check, metrics source and TUI runner.
type stubMonitor struct {
	source metrics.Source
	calls  int
	opts   monitor.Options
	err    error
}

func installStubMonitor(t *testing.T, src metrics.Source, tty bool) *stubMonitor {
	t.Helper()
	stub := &stubMonitor{source: src}

	origTerminal, origSource, origRun := isTerminal, newSource, runMonitor
	t.Cleanup(func() {
		isTerminal, newSource, runMonitor = origTerminal, origSource, origRun
	})

	isTerminal = func(int) bool { return tty }
	newSource = func() metrics.Source { return stub.source }
	runMonitor = func(ctx context.Context, src metrics.Source, opts monitor.Options) error {
		stub.calls++
		stub.source = src
		stub.opts = opts
		return stub.err
	}
	return stub
}
