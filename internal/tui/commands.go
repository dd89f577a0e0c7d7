package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/client"
	"github.com/thenoetrevino/kanban/internal/models"
)

// requestTimeout bounds one mutation together with its re-fetch.
const requestTimeout = 15 * time.Second

// syncedMsg carries freshly fetched server state. Action and Err are set
// when the mutation that preceded the fetch failed; FetchErr when the
// fetch itself failed.
type syncedMsg struct {
	Boards   []*models.Board
	Board    *models.BoardDetails
	Focus    focus
	Action   string
	Err      error
	FetchErr error
}

// mutation performs one API call and reports where the cursors should land.
type mutation func(ctx context.Context, b Backend) (focus, error)

// fetchState reads the board list and the board identified by boardID.
// A missing board falls back to the first one.
func fetchState(ctx context.Context, b Backend, boardID int64) syncedMsg {
	boards, err := b.ListBoards(ctx)
	if err != nil {
		return syncedMsg{FetchErr: err}
	}
	msg := syncedMsg{Boards: boards}
	if len(boards) == 0 {
		return msg
	}

	if boardID == 0 || !containsBoard(boards, boardID) {
		boardID = boards[0].ID
	}
	details, err := b.GetBoard(ctx, boardID)
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() && boardID != boards[0].ID {
		details, err = b.GetBoard(ctx, boards[0].ID)
	}
	if err != nil {
		msg.FetchErr = err
		return msg
	}
	msg.Board = details
	return msg
}

func containsBoard(boards []*models.Board, id int64) bool {
	for _, b := range boards {
		if b.ID == id {
			return true
		}
	}
	return false
}

// fetchCmd re-reads the server state without mutating anything.
func (m Model) fetchCmd(boardID int64) tea.Cmd {
	backend, parent := m.backend, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()
		return fetchState(ctx, backend, boardID)
	}
}

// mutateCmd runs fn and then re-fetches, so the view is always rebuilt from
// server state whether or not the call succeeded.
func (m Model) mutateCmd(action string, boardID int64, fn mutation) tea.Cmd {
	backend, parent := m.backend, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()

		f, err := fn(ctx, backend)
		if f.boardID != 0 {
			boardID = f.boardID
		}
		msg := fetchState(ctx, backend, boardID)
		msg.Focus = f
		if err != nil {
			msg.Action = action
			msg.Err = err
		}
		return msg
	}
}

// describeErr turns a failed call into a short message for the status line.
func describeErr(action string, err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to %s: %s", action, apiErr.Message)
	}
	return fmt.Sprintf("Failed to %s: %v", action, err)
}
