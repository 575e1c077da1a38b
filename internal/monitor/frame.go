package monitor

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rileyhilliard/rrtop/internal/metrics"
)

// Layout constants for the dashboard frame.
const (
	GaugeHeight         = 3  // bordered single-line gauge
	TableMinHeight      = 5  // minimum height of the process panel
	DefaultProcessLimit = 10 // rows in the process table
)

// Panel titles, including the padding spaces drawn inside the border.
const (
	CPUTitle       = " CPU Usage "
	MemoryTitle    = " Memory Usage "
	ProcessesTitle = " Top Processes "
)

// ProcessColumns are the process table columns and their share of the panel width.
var ProcessColumns = []Column{
	{Title: "PID", WidthPercent: 20},
	{Title: "Name", WidthPercent: 50},
	{Title: "CPU%", WidthPercent: 30},
}

// Gauge describes a single-value percentage widget.
// Percent is not clamped here; the renderer clamps what it draws.
type Gauge struct {
	Title    string
	Percent  float64
	Severity Severity
}

// Column is a table column with a relative width.
type Column struct {
	Title        string
	WidthPercent int
}

// Table describes the process table.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Frame is the full description of one dashboard repaint, top to bottom.
type Frame struct {
	CPU       Gauge
	Memory    Gauge
	Processes Table
}

// RankedProcessView is at most limit processes, busiest first.
type RankedProcessView []metrics.ProcessInfo

// MemoryPercent returns used/total as a percentage.
// A zero total yields 0 so gauges never receive NaN.
func MemoryPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// Rank sorts a copy of procs by CPU descending, breaking ties by PID
// ascending, and truncates to limit. The input slice is not modified.
func Rank(procs []metrics.ProcessInfo, limit int) RankedProcessView {
	if limit <= 0 {
		limit = DefaultProcessLimit
	}

	ranked := make([]metrics.ProcessInfo, len(procs))
	copy(ranked, procs)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CPUPercent != ranked[j].CPUPercent {
			return ranked[i].CPUPercent > ranked[j].CPUPercent
		}
		return ranked[i].PID < ranked[j].PID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return RankedProcessView(ranked)
}

// Rows formats the view as process table rows.
func (v RankedProcessView) Rows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, p := range v {
		rows = append(rows, []string{
			strconv.FormatInt(int64(p.PID), 10),
			p.Name,
			fmt.Sprintf("%.1f%%", p.CPUPercent),
		})
	}
	return rows
}

// BuildFrame derives the dashboard frame from a snapshot.
// It depends only on its arguments.
func BuildFrame(s *metrics.Snapshot, limit int) Frame {
	if s == nil {
		s = &metrics.Snapshot{}
	}
	memPercent := MemoryPercent(s.UsedMemoryBytes, s.TotalMemoryBytes)

	columns := make([]Column, len(ProcessColumns))
	copy(columns, ProcessColumns)

	return Frame{
		CPU: Gauge{
			Title:    CPUTitle,
			Percent:  s.CPUPercent,
			Severity: ColorFor(s.CPUPercent),
		},
		Memory: Gauge{
			Title:    MemoryTitle,
			Percent:  memPercent,
			Severity: ColorFor(memPercent),
		},
		Processes: Table{
			Title:   ProcessesTitle,
			Columns: columns,
			Rows:    Rank(s.Processes, limit).Rows(),
		},
	}
}
