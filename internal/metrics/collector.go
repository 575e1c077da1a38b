package metrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/rileyhilliard/rrtop/internal/logger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// procHandle is the subset of *process.Process the collector uses.
type procHandle interface {
	Name(ctx context.Context) (string, error)
	// Percent returns CPU usage since the previous call on the same handle.
	Percent(ctx context.Context) (float64, error)
}

// gopsutilProc adapts *process.Process to procHandle.
type gopsutilProc struct {
	p *process.Process
}

func (g gopsutilProc) Name(ctx context.Context) (string, error) {
	return g.p.NameWithContext(ctx)
}

func (g gopsutilProc) Percent(ctx context.Context) (float64, error) {
	return g.p.PercentWithContext(ctx, 0)
}

// Collector reads local host metrics through gopsutil.
//
// Per-process CPU is an interval measurement, so the collector keeps one
// handle per live PID between calls. Handles for exited PIDs are dropped on
// every Snapshot. Snapshot values themselves are never reused.
type Collector struct {
	mu      sync.Mutex
	handles map[int32]procHandle
	closed  bool
	log     logger.Logger

	// Overridable for testing.
	cpuPercent    func(ctx context.Context) ([]float64, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	listPIDs      func(ctx context.Context) ([]int32, error)
	openProcess   func(ctx context.Context, pid int32) (procHandle, error)
	now           func() time.Time
}

// NewCollector creates a gopsutil-backed collector.
// If log is nil, a no-op logger is used.
func NewCollector(log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		handles: make(map[int32]procHandle),
		log:     log,
		cpuPercent: func(ctx context.Context) ([]float64, error) {
			return cpu.PercentWithContext(ctx, 0, false)
		},
		virtualMemory: mem.VirtualMemoryWithContext,
		listPIDs:      process.PidsWithContext,
		openProcess: func(ctx context.Context, pid int32) (procHandle, error) {
			p, err := process.NewProcessWithContext(ctx, pid)
			if err != nil {
				return nil, err
			}
			return gopsutilProc{p: p}, nil
		},
		now: time.Now,
	}
}

// Snapshot reads global CPU, memory and the process list.
// Processes that exit or deny access mid-read are skipped; failures of the
// host-level reads are returned as METRICS errors.
func (c *Collector) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errors.New(errors.ErrMetrics,
			"Metrics collector is closed",
			"Create a new collector before sampling again")
	}

	cpus, err := c.cpuPercent(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Failed to read CPU utilization",
			"Check that the system statistics interface (/proc on Linux) is readable")
	}
	if len(cpus) == 0 {
		return nil, errors.New(errors.ErrMetrics,
			"CPU utilization returned no values",
			"This platform may not be supported")
	}

	vm, err := c.virtualMemory(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Failed to read memory statistics",
			"Check that the system statistics interface (/proc on Linux) is readable")
	}

	procs, err := c.readProcesses(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Timestamp:        c.now(),
		CPUPercent:       cpus[0],
		TotalMemoryBytes: vm.Total,
		UsedMemoryBytes:  vm.Used,
		Processes:        procs,
	}, nil
}

// readProcesses refreshes the handle table and samples every live process.
// Caller must hold c.mu.
func (c *Collector) readProcesses(ctx context.Context) ([]ProcessInfo, error) {
	pids, err := c.listPIDs(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Failed to list processes",
			"Check that the process table is readable")
	}

	live := make(map[int32]struct{}, len(pids))
	procs := make([]ProcessInfo, 0, len(pids))

	for _, pid := range pids {
		live[pid] = struct{}{}

		h, ok := c.handles[pid]
		if !ok {
			h, err = c.openProcess(ctx, pid)
			if err != nil {
				c.log.Debug("skipping pid %d: %v", pid, err)
				continue
			}
			c.handles[pid] = h
		}

		name, err := h.Name(ctx)
		if err != nil {
			c.log.Debug("skipping pid %d: name: %v", pid, err)
			delete(c.handles, pid)
			continue
		}
		pct, err := h.Percent(ctx)
		if err != nil {
			c.log.Debug("skipping pid %d: cpu: %v", pid, err)
			delete(c.handles, pid)
			continue
		}

		procs = append(procs, ProcessInfo{PID: pid, Name: name, CPUPercent: pct})
	}

	for pid := range c.handles {
		if _, ok := live[pid]; !ok {
			delete(c.handles, pid)
		}
	}

	return procs, nil
}

// Tracked returns the number of process handles currently held.
func (c *Collector) Tracked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Close drops all process handles. Further Snapshot calls fail.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("collector already closed")
	}
	c.closed = true
	c.handles = nil
	return nil
}

// Sample takes a priming snapshot, waits for warmup, and returns a second
// snapshot. Interval-based CPU figures are only meaningful from the second
// read onward, so one-shot callers should use this instead of Snapshot.
func Sample(ctx context.Context, src Source, warmup time.Duration) (*Snapshot, error) {
	if _, err := src.Snapshot(ctx); err != nil {
		return nil, err
	}

	timer := time.NewTimer(warmup)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return src.Snapshot(ctx)
}
