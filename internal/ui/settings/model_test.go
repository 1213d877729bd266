package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/ui/messages"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCycleAccentEmitsThemeChange(t *testing.T) {
	m := New(config.Default())

	m, cmd := m.Update(keyMsg("l"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ThemeChangedMsg)
	require.True(t, ok)
	assert.Equal(t, config.AccentBlue, msg.Accent, "orange advances to blue")
	assert.Equal(t, config.FontSans, msg.Font, "other rows untouched")
}

func TestCycleWrapsAround(t *testing.T) {
	m := New(config.Default())

	m, _ = m.Update(keyMsg("h"))
	assert.Equal(t, config.AccentPink, m.Accent(), "backwards from the first wraps to the last")
}

func TestRowNavigationBounds(t *testing.T) {
	m := New(config.Default())

	m, _ = m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.row, "cannot move above the first row")

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("j"))
	}
	assert.Equal(t, rowCount-1, m.row, "cannot move past the last row")
}

func TestDigitPicksValueDirectly(t *testing.T) {
	m := New(config.Default())

	m, cmd := m.Update(keyMsg("4"))
	require.NotNil(t, cmd)
	msg := cmd().(messages.ThemeChangedMsg)
	assert.Equal(t, config.AccentRed, msg.Accent, "4 is the fourth accent")

	m, cmd = m.Update(keyMsg("9"))
	assert.Nil(t, cmd, "out-of-range digit is ignored")
	assert.Equal(t, config.AccentRed, m.Accent())
}

func TestCycleFontAndScheme(t *testing.T) {
	m := New(config.Default())

	m, _ = m.Update(keyMsg("j"))
	m, cmd := m.Update(keyMsg("l"))
	msg := cmd().(messages.ThemeChangedMsg)
	assert.Equal(t, config.FontSerif, msg.Font)

	m, _ = m.Update(keyMsg("j"))
	m, cmd = m.Update(keyMsg("l"))
	msg = cmd().(messages.ThemeChangedMsg)
	assert.Equal(t, config.SchemeLight, msg.Scheme)
}
