package statusbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/ui/theme"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF"))

	errorTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B0000")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	statusTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)
)

// Model is the status bar at the bottom of the screen.
type Model struct {
	width      int
	accent     config.Accent
	statusText string
	isError    bool
}

// New creates the status bar.
func New(accent config.Accent) Model {
	return Model{accent: accent}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetAccent updates the accent used for the app badge.
func (m *Model) SetAccent(a config.Accent) {
	m.accent = a
}

// SetStatus sets a temporary status message.
func (m *Model) SetStatus(text string, isError bool) {
	m.statusText = text
	m.isError = isError
}

// Update is a no-op for the status bar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	badge := lipgloss.NewStyle().
		Background(theme.AccentColor(m.accent)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1).
		Render("today")

	var right string
	if m.statusText != "" {
		if m.isError {
			right = errorTextStyle.Render(m.statusText)
		} else {
			right = statusTextStyle.Render(m.statusText)
		}
	}
	right += statusTextStyle.Render("s:settings  ?:keys  q:quit")

	gap := m.width - lipgloss.Width(badge) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, badge, mid, right)
}
