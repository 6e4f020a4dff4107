package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the host key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Enter key.Binding

	KillToStart, ClearLine key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older entry")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer entry")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),

		KillToStart: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "kill to start")),
		ClearLine:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear line")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}
