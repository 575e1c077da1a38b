package cli

import (
	"io"
	"time"

	"github.com/rileyhilliard/rrtop/internal/config"
	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/rileyhilliard/rrtop/internal/metrics"
	"github.com/rileyhilliard/rrtop/internal/monitor"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// snapshotWarmup separates the two reads Sample takes so per-process CPU
// deltas cover a real interval.
var snapshotWarmup = 500 * time.Millisecond

var snapshotFormat string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one reading of CPU, memory and top processes",
	Long: `Take a single reading and print it instead of starting the dashboard.
Useful in scripts and when no terminal is attached.`,
	Example: `  rrtop snapshot
  rrtop snapshot --format json --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := ParseFormat(snapshotFormat)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		err = snapshotCommand(cmd, out, format)
		if err != nil && format == FormatJSON {
			_ = WriteJSONFromError(out, err)
		}
		return err
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotFormat, "format", "f", FormatYAML, "output format: yaml or json")
	rootCmd.AddCommand(snapshotCmd)
}

// SnapshotReport is the printed form of one reading.
type SnapshotReport struct {
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	CPU       GaugeReport     `json:"cpu" yaml:"cpu"`
	Memory    MemoryReport    `json:"memory" yaml:"memory"`
	Processes []ProcessReport `json:"processes" yaml:"processes"`
}

// GaugeReport is a utilization reading and its severity band.
type GaugeReport struct {
	Percent  float64 `json:"percent" yaml:"percent"`
	Severity string  `json:"severity" yaml:"severity"`
}

// MemoryReport adds the raw byte counts behind the memory gauge.
type MemoryReport struct {
	GaugeReport `yaml:",inline"`
	UsedBytes   uint64 `json:"used_bytes" yaml:"used_bytes"`
	TotalBytes  uint64 `json:"total_bytes" yaml:"total_bytes"`
}

// ProcessReport is one row of the ranked process list.
type ProcessReport struct {
	PID        int32   `json:"pid" yaml:"pid"`
	Name       string  `json:"name" yaml:"name"`
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
}

func snapshotCommand(cmd *cobra.Command, out io.Writer, format string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	src := newSource()
	snap, err := metrics.Sample(cmd.Context(), src, snapshotWarmup)
	closeErr := src.Close()
	if err != nil {
		if _, ok := err.(*errors.Error); !ok {
			err = errors.WrapWithCode(err, errors.ErrMetrics, "Failed to sample system metrics", "")
		}
		return err
	}
	if closeErr != nil {
		return errors.WrapWithCode(closeErr, errors.ErrMetrics, "Failed to release process handles", "")
	}

	return writeReport(out, NewSnapshotReport(snap, cfg.Limit), format)
}

// NewSnapshotReport ranks the snapshot's processes and computes the same
// percentages and severities the dashboard shows.
func NewSnapshotReport(s *metrics.Snapshot, limit int) SnapshotReport {
	memPct := monitor.MemoryPercent(s.UsedMemoryBytes, s.TotalMemoryBytes)
	ranked := monitor.Rank(s.Processes, limit)

	procs := make([]ProcessReport, 0, len(ranked))
	for _, p := range ranked {
		procs = append(procs, ProcessReport{PID: p.PID, Name: p.Name, CPUPercent: p.CPUPercent})
	}

	return SnapshotReport{
		Timestamp: s.Timestamp,
		CPU:       GaugeReport{Percent: s.CPUPercent, Severity: monitor.ColorFor(s.CPUPercent).String()},
		Memory: MemoryReport{
			GaugeReport: GaugeReport{Percent: memPct, Severity: monitor.ColorFor(memPct).String()},
			UsedBytes:   s.UsedMemoryBytes,
			TotalBytes:  s.TotalMemoryBytes,
		},
		Processes: procs,
	}
}

func writeReport(w io.Writer, report SnapshotReport, format string) error {
	if format == FormatJSON {
		return WriteJSONSuccess(w, report)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
