package monitor

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard palette. ANSI codes keep the colors consistent with the
// user's terminal theme.
const (
	ColorLow    = lipgloss.Color("2") // Green
	ColorMedium = lipgloss.Color("3") // Yellow
	ColorHigh   = lipgloss.Color("1") // Red

	ColorHeader = lipgloss.Color("3") // Yellow
	ColorBorder = lipgloss.Color("8") // Gray (bright black)
	ColorTitle  = lipgloss.Color("7") // White/default
	ColorMuted  = lipgloss.Color("8")
)

// Thresholds for metric severity levels. Each band includes its lower bound.
const (
	MediumThreshold = 50.0
	HighThreshold   = 80.0
)

// Severity is the color band of a percentage metric.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String returns a human-readable label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Color returns the gauge color for the severity.
func (s Severity) Color() lipgloss.Color {
	switch s {
	case SeverityHigh:
		return ColorHigh
	case SeverityMedium:
		return ColorMedium
	default:
		return ColorLow
	}
}

// ColorFor returns the severity band for a percentage:
// below 50 is low, 50 up to 80 is medium, 80 and above is high.
func ColorFor(percent float64) Severity {
	switch {
	case percent >= HighThreshold:
		return SeverityHigh
	case percent >= MediumThreshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// clampPercent limits a percentage to [0, 100] for drawing.
// Per-process and multi-core figures can exceed 100; NaN draws as 0.
func clampPercent(percent float64) float64 {
	if math.IsNaN(percent) {
		return 0
	}
	return math.Max(0, math.Min(100, percent))
}

var (
	panelBorderStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
