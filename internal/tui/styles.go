package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/patrickprogramme/subshare/internal/config"
)

type styles struct {
	header    lipgloss.Style
	overlay   lipgloss.Style
	ja        lipgloss.Style
	ko        lipgloss.Style
	item      lipgloss.Style
	active    lipgloss.Style
	cursor    lipgloss.Style
	timestamp lipgloss.Style
	status    lipgloss.Style
	errStatus lipgloss.Style
}

func newStyles(s config.Style) styles {
	overlay := lipgloss.NewStyle().Padding(0, 1)
	if s.Border {
		overlay = overlay.Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.Highlight))
	}
	if s.Background != "" {
		overlay = overlay.Background(lipgloss.Color(s.Background))
	}

	ja := lipgloss.NewStyle().Foreground(lipgloss.Color(s.JaColor)).Bold(s.Bold)
	ko := lipgloss.NewStyle().Foreground(lipgloss.Color(s.KoColor)).Bold(s.Bold)

	return styles{
		header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		overlay:   overlay,
		ja:        ja,
		ko:        ko,
		item:      lipgloss.NewStyle().PaddingLeft(2),
		active:    lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color(s.Highlight)).BorderLeft(true).BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(s.Highlight)),
		cursor:    lipgloss.NewStyle().PaddingLeft(2).Reverse(true),
		timestamp: lipgloss.NewStyle().Faint(true),
		status:    lipgloss.NewStyle().Faint(true).Padding(0, 1),
		errStatus: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Padding(0, 1),
	}
}
