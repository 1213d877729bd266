// Package settings is the theme picker: accent color, font family, and
// color scheme. Changes are broadcast so open views re-render and
// re-measure rich content.
package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/ui/messages"
	"github.com/whyisjake/today-tui/internal/ui/theme"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Width(8)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(1, 2)
	rowStyle   = lipgloss.NewStyle().Padding(0, 2)
)

var (
	accents = []config.Accent{
		config.AccentOrange, config.AccentBlue, config.AccentGreen,
		config.AccentRed, config.AccentPurple, config.AccentPink,
	}
	fonts   = []config.Font{config.FontSans, config.FontSerif}
	schemes = []config.Scheme{config.SchemeDark, config.SchemeLight}
)

const (
	rowAccent = iota
	rowFont
	rowScheme
	rowCount
)

// Model is the settings view.
type Model struct {
	accent config.Accent
	font   config.Font
	scheme config.Scheme
	row    int
	width  int
	height int
}

// New creates the settings view seeded from the current config.
func New(cfg config.Config) Model {
	return Model{
		accent: cfg.Accent,
		font:   cfg.Font,
		scheme: cfg.Scheme,
	}
}

// SetSize sets the view dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.row < rowCount-1 {
			m.row++
		}
		return m, nil
	case "k", "up":
		if m.row > 0 {
			m.row--
		}
		return m, nil
	case "h", "left":
		m.cycle(-1)
		return m, m.changed()
	case "l", "right", "enter", " ":
		m.cycle(1)
		return m, m.changed()
	case "1", "2", "3", "4", "5", "6":
		if m.pick(int(key.String()[0] - '1')) {
			return m, m.changed()
		}
		return m, nil
	}
	return m, nil
}

// pick selects the active row's value by position. Out-of-range digits
// are ignored.
func (m *Model) pick(i int) bool {
	switch m.row {
	case rowAccent:
		if i < len(accents) {
			m.accent = accents[i]
			return true
		}
	case rowFont:
		if i < len(fonts) {
			m.font = fonts[i]
			return true
		}
	case rowScheme:
		if i < len(schemes) {
			m.scheme = schemes[i]
			return true
		}
	}
	return false
}

// cycle advances the selected row's value by delta, wrapping around.
func (m *Model) cycle(delta int) {
	switch m.row {
	case rowAccent:
		m.accent = accents[(index(accents, m.accent)+delta+len(accents))%len(accents)]
	case rowFont:
		m.font = fonts[(index(fonts, m.font)+delta+len(fonts))%len(fonts)]
	case rowScheme:
		m.scheme = schemes[(index(schemes, m.scheme)+delta+len(schemes))%len(schemes)]
	}
}

func index[T comparable](values []T, v T) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

func (m Model) changed() tea.Cmd {
	accent, font, scheme := m.accent, m.font, m.scheme
	return func() tea.Msg {
		return messages.ThemeChangedMsg{Accent: accent, Font: font, Scheme: scheme}
	}
}

// View renders the settings view.
func (m Model) View() string {
	rows := []struct {
		label string
		value string
	}{
		{"Accent", string(m.accent)},
		{"Font", string(m.font)},
		{"Scheme", string(m.scheme)},
	}

	out := titleStyle.Render("Settings")
	for i, r := range rows {
		cursor := "  "
		value := valueStyle.Render(r.value)
		if i == m.row {
			cursor = lipgloss.NewStyle().Foreground(theme.AccentColor(m.accent)).Render("> ")
			value = lipgloss.NewStyle().Foreground(theme.AccentColor(m.accent)).Render(r.value)
		}
		if i == rowAccent {
			swatch := lipgloss.NewStyle().Foreground(theme.AccentColor(m.accent)).Render("■")
			value += " " + swatch
		}
		out += "\n" + rowStyle.Render(fmt.Sprintf("%s%s %s", cursor, labelStyle.Render(r.label), value))
	}
	out += "\n" + hintStyle.Render("j/k:row  h/l:change  1-6:pick  esc:back")
	return out
}

// Accent returns the currently selected accent.
func (m Model) Accent() config.Accent { return m.accent }

// Font returns the currently selected font family.
func (m Model) Font() config.Font { return m.font }

// Scheme returns the currently selected color scheme.
func (m Model) Scheme() config.Scheme { return m.scheme }
