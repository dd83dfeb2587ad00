package tui

import "github.com/charmbracelet/lipgloss"

// Theme styles the status lines the session prints between prompts.
type Theme struct {
	Heading lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns the adaptive palette used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#B8A6FF"}),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1B7F3B", Dark: "#5FD787"}),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF6B6B"}),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

// PlainTheme leaves every line unstyled.
func PlainTheme() Theme {
	return Theme{
		Heading: lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}
