// Package monitor implements the full-screen live system dashboard.
//
// The dashboard shows two gauges (global CPU and memory utilization) and a
// table of the busiest processes, refreshed on a fixed interval.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: holds the metrics source handle, the last built Frame and the
//     terminal size
//   - Update: processes key presses, refresh ticks and snapshot results
//   - View: renders the current Frame to a string
//
// Everything between a snapshot and the rendered string is a pure function:
// MemoryPercent, Rank, ColorFor and BuildFrame take values and return values,
// so the same snapshot always yields the same Frame.
//
// # Refresh cycle
//
//  1. snapshotCmd queries the metrics.Source exactly once
//  2. snapshotMsg arrives; BuildFrame replaces Model.frame; View repaints
//  3. tickCmd waits for the refresh interval (default 250ms) while key
//     presses are still delivered
//  4. tickMsg starts the next cycle, unless the dashboard is stopping
//
// A quit key or a snapshot failure stops the dashboard. After that no more
// snapshots are taken, even if a tick is already in flight. Run closes the
// source exactly once on every exit path; Bubble Tea restores the terminal
// (raw mode and alternate screen) when the program returns.
//
// # Keyboard
//
//	q, Esc, Ctrl+C   Quit
//
// Every other key is ignored.
package monitor
