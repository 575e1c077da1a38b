package monitor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/rileyhilliard/rrtop/internal/metrics"
)

// Run shows the dashboard until a quit key or a fatal error.
//
// The program uses the alternate screen; Bubble Tea puts the terminal back
// into its original mode before Program.Run returns, on every exit path.
// The source is closed exactly once after that. Extra program options are
// appended after the defaults, which lets tests swap input and output.
func Run(ctx context.Context, source metrics.Source, opts Options, programOpts ...tea.ProgramOption) (err error) {
	defer func() {
		if cerr := source.Close(); cerr != nil && err == nil {
			err = errors.WrapWithCode(cerr, errors.ErrMetrics,
				"Failed to release the metrics source", "")
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}

	model := NewModel(ctx, source, opts)

	options := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	options = append(options, programOpts...)

	final, runErr := tea.NewProgram(model, options...).Run()
	if runErr != nil {
		return errors.WrapWithCode(runErr, errors.ErrTerminal,
			"Terminal UI failed",
			"Make sure rrtop is running in an interactive terminal")
	}

	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
