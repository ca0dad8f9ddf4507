package main

import (
	"modemap/internal/tui"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B61FF"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#959595"))
)

func primaryText(s string) string {
	return headerStyle.Render(s)
}

func errorText(s string) string {
	return errorStyle.Render(s)
}

func dimText(s string) string {
	return dimStyle.Render(s)
}

func matchText(s string) string {
	return tui.MatchStyle.Render(s)
}
