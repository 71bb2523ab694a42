package theme

import "github.com/charmbracelet/lipgloss"

// Theme carries the classic Televideo look: white text on navy bars.
type Theme struct {
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Prompt      lipgloss.Style
	Error       lipgloss.Style
	Placeholder lipgloss.Style
}

func Default() Theme {
	navy := lipgloss.Color("#000080")
	white := lipgloss.Color("#ffffff")
	yellow := lipgloss.Color("#f9e2af")
	red := lipgloss.Color("#f38ba8")
	overlay := lipgloss.Color("#7f849c")

	return Theme{
		Header:      lipgloss.NewStyle().Background(navy).Foreground(white).Bold(true),
		Footer:      lipgloss.NewStyle().Background(navy).Foreground(white),
		Prompt:      lipgloss.NewStyle().Background(navy).Foreground(yellow).Bold(true),
		Error:       lipgloss.NewStyle().Background(navy).Foreground(red).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(overlay),
	}
}
