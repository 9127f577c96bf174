package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	premium    lipgloss.Style
	free       lipgloss.Style
	quota      lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	jobID      lipgloss.Style
	statusDone lipgloss.Style
	statusFail lipgloss.Style
	statusWork lipgloss.Style
	detail     lipgloss.Style
	selected   lipgloss.Style
	project    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		premium:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		free:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		quota:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		jobID:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		statusDone: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		statusFail: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		statusWork: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		project:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
