package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Pick      key.Binding
	Swap      key.Binding
	Refresh   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Pick:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick currency")),
		Swap:      key.NewBinding(key.WithKeys("ctrl+s", "s"), key.WithHelp("s", "swap")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+r", "r"), key.WithHelp("r", "refresh rates")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Pick, k.Swap, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Pick},
		{k.Swap, k.Refresh, k.Quit},
	}
}

func keyMatches(m tea.KeyMsg, b key.Binding) bool {
	return key.Matches(m, b)
}

// typingKey reports whether a key belongs to the amount field rather than a
// shortcut. Only ctrl chords reach shortcuts while typing.
func typingKey(s string) bool {
	switch s {
	case "s", "r", "q", " ":
		return true
	}
	return false
}

// numericRune mirrors what a numeric input accepts.
func numericRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E'
}
