// Package testing provides test doubles for the metrics package.
package testing

import (
	"context"
	"sync"

	"github.com/rileyhilliard/rrtop/internal/metrics"
)

// FakeSource is a scriptable metrics.Source.
//
// Each Snapshot call returns the next entry of Snapshots (the last entry
// repeats once the script runs out). FailAfter makes the call with that
// 1-based index, and every later call, return FailError.
type FakeSource struct {
	mu sync.Mutex

	// Configuration
	Snapshots []*metrics.Snapshot
	FailError error
	FailAfter int // 0 disables failures; 1 fails the first call
	CloseErr  error

	// Call tracking
	SnapshotCalls int
	CloseCalls    int
}

// NewFakeSource creates a fake that always returns snapshot.
func NewFakeSource(snapshot *metrics.Snapshot) *FakeSource {
	return &FakeSource{Snapshots: []*metrics.Snapshot{snapshot}}
}

// NewFailingSource creates a fake whose first Snapshot call fails with err.
func NewFailingSource(err error) *FakeSource {
	return &FakeSource{FailError: err, FailAfter: 1}
}

// Snapshot implements metrics.Source.
func (f *FakeSource) Snapshot(ctx context.Context) (*metrics.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SnapshotCalls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FailAfter > 0 && f.SnapshotCalls >= f.FailAfter {
		return nil, f.FailError
	}
	if len(f.Snapshots) == 0 {
		return &metrics.Snapshot{}, nil
	}

	idx := f.SnapshotCalls - 1
	if idx >= len(f.Snapshots) {
		idx = len(f.Snapshots) - 1
	}
	return f.Snapshots[idx], nil
}

// Close implements metrics.Source.
func (f *FakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseCalls++
	return f.CloseErr
}

// Calls returns the number of Snapshot and Close calls so far.
func (f *FakeSource) Calls() (snapshots, closes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SnapshotCalls, f.CloseCalls
}
