package tui

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles for one session. Built once at
// startup so a configured accent override applies everywhere.
type styles struct {
	title     lipgloss.Style
	builder   lipgloss.Style
	focused   lipgloss.Style
	cursor    lipgloss.Style
	typeTag   lipgloss.Style
	value     lipgloss.Style
	fieldErr  lipgloss.Style
	statusOK  lipgloss.Style
	statusErr lipgloss.Style
	hint      lipgloss.Style
	modal     lipgloss.Style
	option    lipgloss.Style
	optionSel lipgloss.Style
	help      lipgloss.Style
	helpKey   lipgloss.Style
}

func newStyles(accent lipgloss.Color) styles {
	if accent == "" {
		accent = colorAccent
	}
	return styles{
		title:     lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		builder:   lipgloss.NewStyle().Foreground(colorText),
		focused:   lipgloss.NewStyle().Foreground(colorFocus).Bold(true),
		cursor:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		typeTag:   lipgloss.NewStyle().Foreground(colorSubtext0),
		value:     lipgloss.NewStyle().Foreground(colorText),
		fieldErr:  lipgloss.NewStyle().Foreground(colorError),
		statusOK:  lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0).Padding(0, 1),
		statusErr: lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0).Padding(0, 1),
		hint:      lipgloss.NewStyle().Foreground(colorMuted),
		modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		option:    lipgloss.NewStyle().Foreground(colorSubtext0),
		optionSel: lipgloss.NewStyle().Foreground(accent).Bold(true),
		help:      lipgloss.NewStyle().Foreground(colorMuted),
		helpKey:   lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}
