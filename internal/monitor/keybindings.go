package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitEsc = "esc"
	KeyQuitAlt = "ctrl+c" // raw mode swallows SIGINT
)

// IsQuitKey reports whether a key press should stop the dashboard.
// Matching is exact: "Q" and "alt+q" do not quit.
func IsQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case KeyQuit, KeyQuitEsc, KeyQuitAlt:
		return true
	}
	return false
}

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if IsQuitKey(msg) {
		m.quitting = true
		return true, tea.Quit
	}
	return false, nil
}
