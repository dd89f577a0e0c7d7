package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/models"
)

// View renders the current state of the application.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = render(m.state, m.styles, m.keys, m.input.View())
	return view
}

// render draws the whole screen from state. input is the rendered text
// input, shown only in InputMode.
func render(s *AppState, st Styles, keys keyMap, input string) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBoards(s, st),
		renderBoard(s, st),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, renderFooter(s, st, keys, input))
}

func renderBoards(s *AppState, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Boards"))
	b.WriteString("\n")

	if len(s.Boards) == 0 {
		b.WriteString(st.Subtle.Render("No boards"))
	}
	for i, board := range s.Boards {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == s.BoardIdx {
			b.WriteString(st.Cursor.Render("> " + board.Name))
		} else {
			b.WriteString("  " + st.Normal.Render(board.Name))
		}
	}

	style := st.Pane
	if s.Pane == BoardsPane {
		style = st.ActivePane
	}
	return style.Render(b.String())
}

func renderBoard(s *AppState, st Styles) string {
	style := st.Pane
	if s.Pane == BoardPane {
		style = st.ActivePane
	}

	if s.Board == nil {
		return style.Render(st.Subtle.Render("No board open"))
	}

	header := st.Title.Render(s.Board.Name)
	if len(s.Board.Lists) == 0 {
		return style.Render(header + "\n" + st.Subtle.Render("No lists yet"))
	}

	columns := make([]string, 0, len(s.Board.Lists))
	for i, l := range s.Board.Lists {
		selected := s.Pane == BoardPane && i == s.ListIdx
		taskIdx := -1
		if selected {
			taskIdx = s.TaskIdx
		}
		columns = append(columns, renderList(l, selected, taskIdx, st))
	}
	return style.Render(header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

// renderList draws one list column. taskIdx is the selected task, or -1.
func renderList(l *models.ListDetails, selected bool, taskIdx int, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(fmt.Sprintf("%s (%d)", l.Name, len(l.Tasks))))

	if len(l.Tasks) == 0 {
		b.WriteString("\n" + st.Subtle.Render("No tasks"))
	}
	for i, t := range l.Tasks {
		b.WriteString("\n" + renderTask(t, i == taskIdx, st))
	}

	if selected {
		return st.SelectedList.Render(b.String())
	}
	return st.List.Render(b.String())
}

func renderTask(t *models.Task, selected bool, st Styles) string {
	content := st.Normal.Render(t.Title)

	var meta []string
	if t.AssignedTo != nil && *t.AssignedTo != "" {
		meta = append(meta, "@"+*t.AssignedTo)
	}
	if t.DueDate != nil {
		meta = append(meta, "due "+t.DueDate.String())
	}
	if len(meta) > 0 {
		content += "\n" + st.Subtle.Render(strings.Join(meta, "  "))
	}

	if selected {
		return st.SelectedTask.Render(content)
	}
	return st.Task.Render(content)
}

func renderFooter(s *AppState, st Styles, keys keyMap, input string) string {
	var lines []string

	switch s.Mode {
	case InputMode:
		prompt := st.EditPrompt
		if s.Creating {
			prompt = st.CreatePrompt
		}
		lines = append(lines, prompt.Render(st.Title.Render(s.Prompt)+"\n"+input))
	case ConfirmMode:
		q := fmt.Sprintf("%s (%s to confirm, any other key cancels)", s.Question, keys.Confirm.Help().Key)
		lines = append(lines, st.DeletePrompt.Render(q))
	}

	if n := s.Notification; n != nil {
		if n.Level == LevelError {
			lines = append(lines, st.Error.Render(n.Message))
		} else {
			lines = append(lines, st.Info.Render(n.Message))
		}
	}

	lines = append(lines, renderHelp(keys.shortHelp(s.Pane), st))
	return strings.Join(lines, "\n")
}

func renderHelp(bindings []key.Binding, st Styles) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return st.Subtle.Render(strings.Join(parts, " • "))
}
