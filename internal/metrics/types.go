// Package metrics samples host CPU, memory and per-process CPU usage.
//
// The dashboard depends only on the Source interface; Collector is the
// gopsutil-backed implementation used by the CLI, and the testing subpackage
// holds a scriptable fake.
package metrics

import (
	"context"
	"time"
)

// Snapshot is one synchronous read of host and process metrics.
type Snapshot struct {
	Timestamp        time.Time
	CPUPercent       float64 // global utilization, 0-100
	TotalMemoryBytes uint64
	UsedMemoryBytes  uint64
	Processes        []ProcessInfo // unordered
}

// ProcessInfo describes a single process at snapshot time.
type ProcessInfo struct {
	PID  int32
	Name string
	// CPUPercent is summed across cores, so it can exceed 100 on multi-core hosts.
	CPUPercent float64
}

// Source produces fresh snapshots on demand.
type Source interface {
	// Snapshot returns current values. It must not return cached data.
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Close releases any handles held by the source.
	Close() error
}
