package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/client"
	"github.com/thenoetrevino/kanban/internal/position"
)

// Update handles all messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case syncedMsg:
		m.applySynced(msg)
		return m, nil

	case tea.KeyPressMsg:
		switch m.state.Mode {
		case InputMode:
			return m.updateInput(msg)
		case ConfirmMode:
			cmd := m.confirmCmd(msg)
			m.endPrompt()
			return m, cmd
		default:
			return m.updateNormal(msg)
		}
	}

	if m.state.Mode == InputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applySynced replaces the domain state with what the server returned.
func (m Model) applySynced(msg syncedMsg) {
	switch {
	case msg.Err != nil:
		m.log.WithError(msg.Err).WithField("action", msg.Action).Warn("mutation failed")
		m.state.Notify(LevelError, describeErr(msg.Action, msg.Err))
	case msg.FetchErr != nil:
		m.state.Notify(LevelError, describeErr("refresh", msg.FetchErr))
	default:
		m.state.Notification = nil
	}

	if msg.FetchErr != nil {
		m.log.WithError(msg.FetchErr).Warn("refresh failed")
		return
	}
	m.state.apply(msg.Boards, msg.Board, msg.Focus)
}

// ============================================================================
// Normal mode
// ============================================================================

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchPane):
		if m.state.Pane == BoardsPane {
			m.state.Pane = BoardPane
		} else {
			m.state.Pane = BoardsPane
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchCmd(m.openBoardID())
	case key.Matches(msg, m.keys.NewBoard):
		return m.startInput("New board name", pendingAction{kind: actionCreateBoard}, "")
	}

	if m.state.Pane == BoardsPane {
		return m.updateBoardsPane(msg)
	}
	return m.updateBoardPane(msg)
}

func (m Model) updateBoardsPane(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	s := m.state
	switch {
	case key.Matches(msg, m.keys.PrevItem):
		return m.selectBoard(s.BoardIdx - 1)
	case key.Matches(msg, m.keys.NextItem):
		return m.selectBoard(s.BoardIdx + 1)
	case msg.String() == "enter":
		if s.Board != nil {
			s.Pane = BoardPane
		}
		return m, nil
	}

	b := s.SelectedBoard()
	if b == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.startInput("Rename board", pendingAction{kind: actionRenameBoard, boardID: b.ID}, b.Name)
	case key.Matches(msg, m.keys.Delete):
		return m.startConfirm(
			fmt.Sprintf("Delete board %q with all its lists and tasks?", b.Name),
			pendingAction{kind: actionDeleteBoard, boardID: b.ID},
		)
	}
	return m, nil
}

// selectBoard moves the board cursor and opens that board.
func (m Model) selectBoard(idx int) (tea.Model, tea.Cmd) {
	s := m.state
	if idx < 0 || idx >= len(s.Boards) || idx == s.BoardIdx {
		return m, nil
	}
	s.BoardIdx = idx
	s.ListIdx, s.TaskIdx = 0, 0
	return m, m.fetchCmd(s.Boards[idx].ID)
}

func (m Model) updateBoardPane(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	s := m.state
	if s.Board == nil {
		return m, nil
	}

	switch {
	case msg.String() == "esc":
		s.Pane = BoardsPane
		return m, nil
	case key.Matches(msg, m.keys.PrevList):
		if s.ListIdx > 0 {
			s.ListIdx--
			s.clamp()
		}
		return m, nil
	case key.Matches(msg, m.keys.NextList):
		if s.ListIdx < len(s.Board.Lists)-1 {
			s.ListIdx++
			s.clamp()
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevItem):
		if s.TaskIdx > 0 {
			s.TaskIdx--
		}
		return m, nil
	case key.Matches(msg, m.keys.NextItem):
		if l := s.SelectedList(); l != nil && s.TaskIdx < len(l.Tasks)-1 {
			s.TaskIdx++
		}
		return m, nil
	case key.Matches(msg, m.keys.NewList):
		return m.startInput("New list name", pendingAction{kind: actionCreateList, boardID: s.Board.ID}, "")
	case key.Matches(msg, m.keys.MoveListLeft):
		return m.moveList(-1)
	case key.Matches(msg, m.keys.MoveListRight):
		return m.moveList(1)
	}

	l := s.SelectedList()
	if l == nil {
		return m, nil
	}
	t := s.SelectedTask()

	switch {
	case key.Matches(msg, m.keys.AddTask):
		return m.startInput("New task", pendingAction{kind: actionCreateTask, boardID: s.Board.ID, listID: l.ID}, "")
	case key.Matches(msg, m.keys.Edit):
		if t != nil {
			return m.startInput("Edit task",
				pendingAction{kind: actionEditTask, boardID: s.Board.ID, listID: l.ID, taskID: t.ID}, t.Title)
		}
		return m.startInput("Rename list", pendingAction{kind: actionRenameList, boardID: s.Board.ID, listID: l.ID}, l.Name)
	case key.Matches(msg, m.keys.Delete):
		if t != nil {
			return m.startConfirm(
				fmt.Sprintf("Delete task %q?", t.Title),
				pendingAction{kind: actionDeleteTask, boardID: s.Board.ID, listID: l.ID, taskID: t.ID},
			)
		}
		return m.startConfirm(
			fmt.Sprintf("Delete list %q?", l.Name),
			pendingAction{kind: actionDeleteList, boardID: s.Board.ID, listID: l.ID},
		)
	case key.Matches(msg, m.keys.MoveTaskUp):
		return m.moveTaskWithinList(-1)
	case key.Matches(msg, m.keys.MoveTaskDown):
		return m.moveTaskWithinList(1)
	case key.Matches(msg, m.keys.MoveTaskPrevList):
		return m.moveTaskToList(-1)
	case key.Matches(msg, m.keys.MoveTaskNextList):
		return m.moveTaskToList(1)
	}
	return m, nil
}

// ============================================================================
// Ordering
// ============================================================================

// moveList swaps the selected list with its neighbour and sends the full
// new order of the board.
func (m Model) moveList(delta int) (tea.Model, tea.Cmd) {
	s := m.state
	l := s.SelectedList()
	if l == nil {
		return m, nil
	}
	ids, _, ok := position.Swap(s.Board.ListIDs(), s.ListIdx, delta)
	if !ok {
		return m, nil
	}
	boardID, listID := s.Board.ID, l.ID

	return m, m.mutateCmd("reorder lists", boardID, func(ctx context.Context, b Backend) (focus, error) {
		return focus{listID: listID}, b.ReorderLists(ctx, boardID, ids)
	})
}

// moveTaskWithinList swaps the selected task with its neighbour and sends
// the full new order of the list.
func (m Model) moveTaskWithinList(delta int) (tea.Model, tea.Cmd) {
	s := m.state
	l, t := s.SelectedList(), s.SelectedTask()
	if t == nil {
		return m, nil
	}
	ids, _, ok := position.Swap(l.TaskIDs(), s.TaskIdx, delta)
	if !ok {
		return m, nil
	}
	boardID, listID, taskID := s.Board.ID, l.ID, t.ID

	return m, m.mutateCmd("reorder tasks", boardID, func(ctx context.Context, b Backend) (focus, error) {
		return focus{listID: listID, taskID: taskID}, b.ReorderTasks(ctx, listID, ids)
	})
}

// moveTaskToList sends the selected task to the same row of the adjacent
// list; the server appends when that list is shorter.
func (m Model) moveTaskToList(delta int) (tea.Model, tea.Cmd) {
	s := m.state
	t := s.SelectedTask()
	to := s.ListIdx + delta
	if t == nil || to < 0 || to >= len(s.Board.Lists) {
		return m, nil
	}

	boardID, taskID, row := s.Board.ID, t.ID, s.TaskIdx
	targetID := s.Board.Lists[to].ID

	return m, m.mutateCmd("move task", boardID, func(ctx context.Context, b Backend) (focus, error) {
		_, err := b.MoveTask(ctx, taskID, targetID, row)
		if err != nil {
			return focus{}, err
		}
		return focus{listID: targetID, taskID: taskID}, nil
	})
}

// ============================================================================
// Text input
// ============================================================================

func (m Model) startInput(prompt string, p pendingAction, value string) (tea.Model, tea.Cmd) {
	m.pending = p
	m.state.Mode = InputMode
	m.state.Prompt = prompt
	m.state.Creating = p.kind == actionCreateBoard || p.kind == actionCreateList || p.kind == actionCreateTask
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endPrompt()
		return m, nil
	case "enter":
		value := m.input.Value()
		cmd := m.submit(value)
		m.endPrompt()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// endPrompt leaves InputMode or ConfirmMode without running anything.
func (m *Model) endPrompt() {
	m.input.Blur()
	m.state.Mode = NormalMode
	m.state.Prompt = ""
	m.state.Question = ""
	m.state.Creating = false
	m.pending = pendingAction{}
}

// submit turns the accepted prompt value into an API call. Validation is
// left to the server so its message reaches the status line.
func (m Model) submit(value string) tea.Cmd {
	p := m.pending
	switch p.kind {
	case actionCreateBoard:
		return m.mutateCmd("create board", m.openBoardID(), func(ctx context.Context, b Backend) (focus, error) {
			nb, err := b.CreateBoard(ctx, value)
			if err != nil {
				return focus{}, err
			}
			return focus{boardID: nb.ID}, nil
		})
	case actionRenameBoard:
		return m.mutateCmd("rename board", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			return focus{boardID: p.boardID}, b.RenameBoard(ctx, p.boardID, value)
		})
	case actionCreateList:
		return m.mutateCmd("create list", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			l, err := b.CreateList(ctx, p.boardID, value)
			if err != nil {
				return focus{}, err
			}
			return focus{listID: l.ID}, nil
		})
	case actionRenameList:
		return m.mutateCmd("rename list", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			return focus{listID: p.listID}, b.RenameList(ctx, p.listID, value)
		})
	case actionCreateTask:
		return m.mutateCmd("create task", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			t, err := b.CreateTask(ctx, p.listID, client.TaskInput{Text: value})
			if err != nil {
				return focus{listID: p.listID}, err
			}
			return focus{listID: p.listID, taskID: t.ID}, nil
		})
	case actionEditTask:
		return m.mutateCmd("edit task", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			_, err := b.UpdateTask(ctx, p.taskID, client.TaskPatch{Text: &value})
			return focus{listID: p.listID, taskID: p.taskID}, err
		})
	}
	return nil
}

// ============================================================================
// Confirmation
// ============================================================================

func (m Model) startConfirm(question string, p pendingAction) (tea.Model, tea.Cmd) {
	m.pending = p
	m.state.Mode = ConfirmMode
	m.state.Question = question
	return m, nil
}

// confirmCmd runs the pending delete when msg is the confirm key. Any other
// key cancels.
func (m Model) confirmCmd(msg tea.KeyPressMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Confirm) {
		return nil
	}

	p := m.pending
	switch p.kind {
	case actionDeleteBoard:
		return m.mutateCmd("delete board", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			return focus{}, b.DeleteBoard(ctx, p.boardID)
		})
	case actionDeleteList:
		return m.mutateCmd("delete list", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			return focus{}, b.DeleteList(ctx, p.listID)
		})
	case actionDeleteTask:
		return m.mutateCmd("delete task", p.boardID, func(ctx context.Context, b Backend) (focus, error) {
			return focus{listID: p.listID}, b.DeleteTask(ctx, p.taskID)
		})
	}
	return nil
}
