package monitor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/rileyhilliard/rrtop/internal/logger"
	"github.com/rileyhilliard/rrtop/internal/metrics"
)

// DefaultInterval is the longest the dashboard waits for input between refreshes.
const DefaultInterval = 250 * time.Millisecond

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a dashboard Model.
type Options struct {
	Interval time.Duration // refresh interval; 0 uses DefaultInterval
	Limit    int           // process table rows; 0 uses DefaultProcessLimit
	Logger   logger.Logger // nil discards log output
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx      context.Context
	source   metrics.Source
	interval time.Duration
	limit    int
	log      logger.Logger

	frame      *Frame
	lastUpdate time.Time
	width      int
	height     int
	quitting   bool
	err        error
}

// tickMsg signals the end of the wait between refreshes.
type tickMsg time.Time

// snapshotMsg carries a fresh snapshot from the source.
type snapshotMsg struct {
	snapshot *metrics.Snapshot
}

// snapshotErrMsg carries a source failure. It stops the dashboard.
type snapshotErrMsg struct {
	err error
}

// NewModel creates a dashboard model reading from source.
// The context is passed to every Snapshot call.
func NewModel(ctx context.Context, source metrics.Source, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultProcessLimit
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	return Model{
		ctx:      ctx,
		source:   source,
		interval: opts.Interval,
		limit:    opts.Limit,
		log:      opts.Logger,
	}
}

// Init takes the first snapshot immediately.
func (m Model) Init() tea.Cmd {
	return m.snapshotCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.snapshotCmd()

	case snapshotMsg:
		if m.quitting {
			return m, nil
		}
		frame := BuildFrame(msg.snapshot, m.limit)
		m.frame = &frame
		m.lastUpdate = msg.snapshot.Timestamp
		return m, m.tickCmd()

	case snapshotErrMsg:
		m.log.Error("snapshot failed: %v", msg.err)
		err := msg.err
		if !errors.IsCode(err, errors.ErrMetrics) {
			err = errors.WrapWithCode(err, errors.ErrMetrics,
				"Failed to sample system metrics",
				"Run 'rrtop snapshot' to check that metrics can be read on this host")
		}
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == nil {
		return LabelStyle.Render("Collecting metrics...")
	}
	w, h := m.size()
	return Render(*m.frame, w, h)
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// snapshotCmd returns a command that queries the source once.
func (m Model) snapshotCmd() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		snap, err := source.Snapshot(ctx)
		if err != nil {
			return snapshotErrMsg{err: err}
		}
		if snap == nil {
			snap = &metrics.Snapshot{}
		}
		return snapshotMsg{snapshot: snap}
	}
}

// size returns the terminal size, falling back to 80x24 before it is known.
func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// Err returns the error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Frame returns the most recently built frame, or nil before the first snapshot.
func (m Model) Frame() *Frame {
	return m.frame
}

// Quitting reports whether the dashboard has stopped.
func (m Model) Quitting() bool {
	return m.quitting
}

// LastUpdate returns the timestamp of the frame on screen.
func (m Model) LastUpdate() time.Time {
	return m.lastUpdate
}
