package monitor

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// cellPadding is the horizontal padding bubbles/table adds around each cell.
const cellPadding = 2

// Render draws a frame into a width x height string.
// Gauges take GaugeHeight rows each; the process table gets the rest, but
// never fewer than TableMinHeight rows.
func Render(f Frame, width, height int) string {
	if width < 4 {
		width = 4
	}

	tableHeight := height - 2*GaugeHeight
	if tableHeight < TableMinHeight {
		tableHeight = TableMinHeight
	}

	inner := width - 2

	cpu := renderPanel(f.CPU.Title, []string{renderGauge(f.CPU, inner)}, width, GaugeHeight)
	mem := renderPanel(f.Memory.Title, []string{renderGauge(f.Memory, inner)}, width, GaugeHeight)
	procs := renderPanel(f.Processes.Title,
		strings.Split(renderTable(f.Processes, inner, tableHeight-2), "\n"),
		width, tableHeight)

	return lipgloss.JoinVertical(lipgloss.Left, cpu, mem, procs)
}

// renderGauge draws a solid bar in the gauge's severity color.
// The drawn percentage is clamped to [0, 100]; Gauge.Percent is left as is.
func renderGauge(g Gauge, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(g.Severity.Color())),
		progress.WithWidth(width),
	)
	return bar.ViewAs(clampPercent(g.Percent) / 100)
}

// renderTable draws the process table with column widths taken as
// percentages of the space left after cell padding.
func renderTable(t Table, width, height int) string {
	avail := width - cellPadding*len(t.Columns)
	if avail < len(t.Columns) {
		avail = len(t.Columns)
	}

	cols := make([]table.Column, len(t.Columns))
	used := 0
	for i, c := range t.Columns {
		w := avail * c.WidthPercent / 100
		if i == len(t.Columns)-1 {
			w = avail - used
		}
		if w < 1 {
			w = 1
		}
		used += w
		cols[i] = table.Column{Title: c.Title, Width: w}
	}

	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r)
	}

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithWidth(width),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(tableHeaderStyle)
	// Unfocused: no cursor highlight on the first row.
	s.Selected = lipgloss.NewStyle()
	tbl.SetStyles(s)

	return tbl.View()
}

// renderPanel draws a bordered box with the title set into the top border.
// Body lines are truncated or padded to fit; missing lines are blank.
func renderPanel(title string, body []string, width, height int) string {
	inner := width - 2
	bodyHeight := height - 2
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	title = fitLine(title, inner)
	fill := inner - lipgloss.Width(title)

	var b strings.Builder
	b.WriteString(panelBorderStyle.Render("┌"))
	b.WriteString(panelTitleStyle.Render(title))
	b.WriteString(panelBorderStyle.Render(strings.Repeat("─", fill) + "┐"))

	side := panelBorderStyle.Render("│")
	for i := 0; i < bodyHeight; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		b.WriteString("\n")
		b.WriteString(side + padLine(fitLine(line, inner), inner) + side)
	}

	b.WriteString("\n")
	b.WriteString(panelBorderStyle.Render("└" + strings.Repeat("─", inner) + "┘"))

	return b.String()
}

// fitLine truncates s to at most width visible cells, ANSI-aware.
func fitLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// padLine pads s with spaces to width visible cells.
func padLine(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
