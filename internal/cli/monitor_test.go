package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/rrtop/internal/config"
	rrerrors "github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/rileyhilliard/rrtop/internal/logger"
	"github.com/rileyhilliard/rrtop/internal/metrics"
	metricstest "github.com/rileyhilliard/rrtop/internal/metrics/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorCommand_RequiresTerminal(t *testing.T) {
	stub := installStubMonitor(t, metricstest.NewFakeSource(&metrics.Snapshot{}), false)

	err := monitorCommand(t.Context(), config.DefaultConfig())

	require.Error(t, err)
	assert.True(t, rrerrors.IsCode(err, rrerrors.ErrTerminal))
	assert.Contains(t, err.Error(), "rrtop snapshot")
	assert.Zero(t, stub.calls, "dashboard must not start without a terminal")
}

func TestMonitorCommand_PassesSettings(t *testing.T) {
	t.Setenv(logger.DebugEnv, "")
	src := metricstest.NewFakeSource(&metrics.Snapshot{})
	stub := installStubMonitor(t, src, true)

	cfg := &config.Config{Interval: time.Second, Limit: 7}
	err := monitorCommand(t.Context(), cfg)

	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Same(t, src, stub.source)
	assert.Equal(t, time.Second, stub.opts.Interval)
	assert.Equal(t, 7, stub.opts.Limit)
	assert.NotNil(t, stub.opts.Logger)
}

func TestMonitorCommand_ReturnsRunError(t *testing.T) {
	t.Setenv(logger.DebugEnv, "")
	stub := installStubMonitor(t, metricstest.NewFakeSource(&metrics.Snapshot{}), true)
	stub.err = rrerrors.New(rrerrors.ErrMetrics, "Failed to read memory usage", "")

	err := monitorCommand(t.Context(), config.DefaultConfig())

	assert.Same(t, stub.err, err)
}

func TestRootCommand_RunsMonitorWithFlags(t *testing.T) {
	t.Setenv(logger.DebugEnv, "")
	resetRootCmd(t)
	stub := installStubMonitor(t, metricstest.NewFakeSource(&metrics.Snapshot{}), true)

	err := execute(t.Context(), []string{"--interval", "500ms", "--limit", "3"})

	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, 500*time.Millisecond, stub.opts.Interval)
	assert.Equal(t, 3, stub.opts.Limit)
}

func TestRootCommand_InvalidSettingsDontStartMonitor(t *testing.T) {
	resetRootCmd(t)
	stub := installStubMonitor(t, metricstest.NewFakeSource(&metrics.Snapshot{}), true)

	err := execute(t.Context(), []string{"--limit", "0"})

	require.Error(t, err)
	assert.True(t, rrerrors.IsCode(err, rrerrors.ErrConfig))
	assert.Zero(t, stub.calls)
}

func TestSetupLogging_DiscardsByDefault(t *testing.T) {
	closeLog, err := setupLogging("", false)
	require.NoError(t, err)
	t.Cleanup(closeLog)

	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rrtop.log")

	closeLog, err := setupLogging(path, false)
	require.NoError(t, err)
	log.Printf("[monitor] snapshot failed")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[monitor] snapshot failed")
	assert.Contains(t, string(data), "rrtop")
	assert.Equal(t, "", log.Prefix(), "closing restores the standard logger")
}

func TestSetupLogging_DebugUsesDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	closeLog, err := setupLogging("", true)
	require.NoError(t, err)
	closeLog()

	_, err = os.Stat(DefaultDebugLogFile)
	assert.NoError(t, err)
}

func TestSetupLogging_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "rrtop.log")

	_, err := setupLogging(path, false)

	require.Error(t, err)
	assert.True(t, rrerrors.IsCode(err, rrerrors.ErrConfig))
	assert.Contains(t, err.Error(), path)
}
