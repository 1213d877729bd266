package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Help     key.Binding
	Enter    key.Binding
	Refresh  key.Binding
	OpenURL  key.Binding
	OpenLink key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Collapse key.Binding
	FoldAll  key.Binding
	Parent   key.Binding
	NextSib  key.Binding
	Settings key.Binding
	Filter   key.Binding
}

var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc", "backspace", "h"), key.WithHelp("esc", "back")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Refresh:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	OpenURL:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open url")),
	OpenLink: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open comment link")),
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "down")),
	PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
	Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Collapse: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "collapse")),
	FoldAll:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "fold all")),
	Parent:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "parent")),
	NextSib:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next sibling")),
	Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
}

// helpText flattens the key map into a one-line summary for the status
// bar.
func helpText() string {
	bindings := []key.Binding{
		Keys.Down, Keys.Up, Keys.Enter, Keys.Collapse, Keys.FoldAll,
		Keys.Parent, Keys.NextSib, Keys.OpenURL, Keys.OpenLink,
		Keys.Refresh, Keys.Settings, Keys.Back, Keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}
