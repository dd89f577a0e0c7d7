package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/config"
)

// listWidth is the fixed outer width of a list column.
const listWidth = 30

// Styles are the lipgloss styles of one color scheme.
type Styles struct {
	Pane       lipgloss.Style
	ActivePane lipgloss.Style

	List         lipgloss.Style
	SelectedList lipgloss.Style
	Task         lipgloss.Style
	SelectedTask lipgloss.Style

	Title  lipgloss.Style
	Subtle lipgloss.Style
	Normal lipgloss.Style
	Cursor lipgloss.Style

	CreatePrompt lipgloss.Style
	EditPrompt   lipgloss.Style
	DeletePrompt lipgloss.Style

	Info  lipgloss.Style
	Error lipgloss.Style
}

// NewStyles builds the styles for a color scheme.
func NewStyles(c config.ColorScheme) Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ListBorder)).
		Padding(0, 1)

	list := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ListBorder)).
		Padding(0, 1).
		Width(listWidth)

	task := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.TaskBorder)).
		Width(listWidth - 4)

	prompt := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return Styles{
		Pane:       pane,
		ActivePane: pane.BorderForeground(lipgloss.Color(c.Accent)),

		List:         list,
		SelectedList: list.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		Task:         task,
		SelectedTask: task.BorderForeground(lipgloss.Color(c.SelectedBorder)),

		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		Subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		Normal: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal)),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Accent)),

		CreatePrompt: prompt.BorderForeground(lipgloss.Color(c.Create)),
		EditPrompt:   prompt.BorderForeground(lipgloss.Color(c.Edit)),
		DeletePrompt: prompt.BorderForeground(lipgloss.Color(c.Delete)),

		Info:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.InfoFg)),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),
	}
}
