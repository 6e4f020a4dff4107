package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the host's rendering.
type Style struct {
	Text  lipgloss.Style
	Caret lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:  lipgloss.NewStyle(),
		Caret: lipgloss.NewStyle().Reverse(true),
	}
}
