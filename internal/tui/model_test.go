package tui

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/api"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/client"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupBackend serves the real API over an in-memory store.
func setupBackend(t *testing.T) *client.Client {
	t.Helper()

	logger := quietLogger()
	a := app.New(testutil.SetupTestRepo(t), app.WithLogger(logger))
	e, err := api.NewServer(a, config.ServerConfig{}, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/api", 5*time.Second)
}

func newTestModel(t *testing.T, backend Backend) Model {
	t.Helper()
	m := New(context.Background(), backend, config.Default(), quietLogger())
	return run(t, m, m.Init())
}

// run executes cmd synchronously and feeds a resulting sync back into the
// model. Commands issued while a prompt is open belong to the text input
// (cursor blink) and are skipped.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil || m.state.Mode != NormalMode {
		return m
	}
	msg := cmd()
	if _, ok := msg.(syncedMsg); !ok {
		return m
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// press sends each key in turn and runs the commands they produce.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, cmd := m.Update(keyPress(k))
		m = run(t, updated.(Model), cmd)
	}
	return m
}

// typeText types s into the open prompt and submits it.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
		m = updated.(Model)
	}
	return press(t, m, "enter")
}

// seed builds a board with lists Todo and Doing through the key bindings.
func seed(t *testing.T, m Model) Model {
	t.Helper()
	m = press(t, m, "b")
	m = typeText(t, m, "Sprint 1")
	m = press(t, m, "tab", "n")
	m = typeText(t, m, "Todo")
	m = press(t, m, "n")
	m = typeText(t, m, "Doing")
	return m
}

func TestInitWithNoBoards(t *testing.T) {
	m := newTestModel(t, setupBackend(t))

	s := m.State()
	assert.Empty(t, s.Boards)
	assert.Nil(t, s.Board)
	assert.Nil(t, s.Notification)
	assert.Contains(t, render(s, m.styles, m.keys, ""), "No boards")
}

func TestCreateBoardListsAndTasks(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))

	s := m.State()
	require.Len(t, s.Boards, 1)
	require.NotNil(t, s.Board)
	assert.Equal(t, "Sprint 1", s.Board.Name)
	require.Len(t, s.Board.Lists, 2)
	assert.Equal(t, 1, s.ListIdx, "cursor follows the created list")
	assert.Equal(t, NormalMode, s.Mode)

	m = press(t, m, "h", "a")
	assert.Equal(t, InputMode, m.State().Mode)
	assert.True(t, m.State().Creating)
	m = typeText(t, m, "Fix bug")

	task := m.State().SelectedTask()
	require.NotNil(t, task)
	assert.Equal(t, "Fix bug", task.Title)

	out := render(m.State(), m.styles, m.keys, "")
	assert.Contains(t, out, "Sprint 1")
	assert.Contains(t, out, "Todo (1)")
	assert.Contains(t, out, "Fix bug")
}

func TestMoveTaskToNextList(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	m = press(t, m, "h", "a")
	m = typeText(t, m, "Fix bug")
	taskID := m.State().SelectedTask().ID

	m = press(t, m, ">")

	s := m.State()
	assert.Equal(t, 1, s.ListIdx, "cursor follows the task")
	require.NotNil(t, s.SelectedTask())
	assert.Equal(t, taskID, s.SelectedTask().ID)

	details, err := backend.GetBoard(context.Background(), s.Board.ID)
	require.NoError(t, err)
	assert.Empty(t, details.Lists[0].Tasks)
	assert.Equal(t, []int64{taskID}, details.Lists[1].TaskIDs())
}

func TestReorderTasksWithinList(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	m = press(t, m, "a")
	m = typeText(t, m, "first")
	m = press(t, m, "a")
	m = typeText(t, m, "second")
	second := m.State().SelectedTask().ID
	assert.Equal(t, 1, m.State().TaskIdx)

	m = press(t, m, "K")

	l := m.State().SelectedList()
	require.Len(t, l.Tasks, 2)
	assert.Equal(t, second, l.Tasks[0].ID)
	assert.Equal(t, 0, l.Tasks[0].Position)
	assert.Equal(t, 0, m.State().TaskIdx, "cursor stays on the moved task")
}

func TestMoveTaskDownStopsAtLastRow(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	m = press(t, m, "a")
	m = typeText(t, m, "first")
	m = press(t, m, "a")
	m = typeText(t, m, "second")
	ids := m.State().SelectedList().TaskIDs()

	updated, cmd := m.Update(keyPress("J"))
	assert.Nil(t, cmd, "the last task has nowhere to go")
	assert.Equal(t, ids, updated.(Model).State().SelectedList().TaskIDs())

	m = press(t, m, "k", "J")
	assert.Equal(t, []int64{ids[1], ids[0]}, m.State().SelectedList().TaskIDs())
	assert.Equal(t, 1, m.State().TaskIdx)
}

func TestReorderLists(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	ids := m.State().Board.ListIDs()

	m = press(t, m, "H")

	assert.Equal(t, []int64{ids[1], ids[0]}, m.State().Board.ListIDs())
	assert.Equal(t, 0, m.State().ListIdx)

	// Already first: nothing is sent.
	updated, cmd := m.Update(keyPress("H"))
	assert.Nil(t, cmd)
	assert.Equal(t, []int64{ids[1], ids[0]}, updated.(Model).State().Board.ListIDs())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	m = press(t, m, "a")
	m = typeText(t, m, "doomed")

	m = press(t, m, "d")
	assert.Equal(t, ConfirmMode, m.State().Mode)
	assert.Contains(t, m.State().Question, "doomed")

	m = press(t, m, "x")
	assert.Equal(t, NormalMode, m.State().Mode)
	require.NotNil(t, m.State().SelectedTask(), "any other key cancels")

	m = press(t, m, "d", "y")
	assert.Nil(t, m.State().SelectedTask())
	assert.Empty(t, m.State().SelectedList().Tasks)
}

func TestEditTask(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	m = press(t, m, "a")
	m = typeText(t, m, "draft")

	m = press(t, m, "e")
	assert.Equal(t, "Edit task", m.State().Prompt)
	assert.False(t, m.State().Creating)
	m = typeText(t, m, " v2")

	assert.Equal(t, "draft v2", m.State().SelectedTask().Title)
}

func TestEscapeCancelsPrompt(t *testing.T) {
	m := newTestModel(t, setupBackend(t))

	m = press(t, m, "b")
	for _, r := range "never" {
		updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
		m = updated.(Model)
	}
	m = press(t, m, "esc")

	assert.Equal(t, NormalMode, m.State().Mode)
	assert.Empty(t, m.State().Boards)
}

func TestServerRejectionIsNotified(t *testing.T) {
	m := newTestModel(t, setupBackend(t))

	m = press(t, m, "b")
	m = typeText(t, m, "   ")

	n := m.State().Notification
	require.NotNil(t, n)
	assert.Equal(t, LevelError, n.Level)
	assert.True(t, strings.HasPrefix(n.Message, "Failed to create board"), n.Message)
	assert.Empty(t, m.State().Boards)
}

// failingBackend fails list reorders and otherwise delegates.
type failingBackend struct {
	Backend
}

func (failingBackend) ReorderLists(context.Context, int64, []int64) error {
	return errors.New("connection reset")
}

func TestFailedMutationStillResyncs(t *testing.T) {
	backend := setupBackend(t)
	m := seed(t, newTestModel(t, backend))
	ids := m.State().Board.ListIDs()

	// Rename behind the client's back; the failure path must pick it up.
	require.NoError(t, backend.RenameBoard(context.Background(), m.State().Board.ID, "Renamed"))

	m.backend = failingBackend{Backend: backend}
	m = press(t, m, "H")

	s := m.State()
	require.NotNil(t, s.Notification)
	assert.Equal(t, "Failed to reorder lists: connection reset", s.Notification.Message)
	assert.Equal(t, ids, s.Board.ListIDs(), "order is what the server holds")
	assert.Equal(t, "Renamed", s.Board.Name)

	m.backend = backend
	m = press(t, m, "r")
	assert.Nil(t, m.State().Notification, "a clean refresh clears the error")
}

func TestSwitchingBoardsFetchesDetails(t *testing.T) {
	backend := setupBackend(t)
	ctx := context.Background()
	first, err := backend.CreateBoard(ctx, "Alpha")
	require.NoError(t, err)
	second, err := backend.CreateBoard(ctx, "Beta")
	require.NoError(t, err)
	_, err = backend.CreateList(ctx, second.ID, "Only in beta")
	require.NoError(t, err)

	m := newTestModel(t, backend)
	require.Equal(t, first.ID, m.State().Board.ID)

	m = press(t, m, "j")
	assert.Equal(t, second.ID, m.State().Board.ID)
	assert.Equal(t, 1, m.State().BoardIdx)
	require.Len(t, m.State().Board.Lists, 1)

	m = press(t, m, "d", "y")
	require.Len(t, m.State().Boards, 1)
	assert.Equal(t, first.ID, m.State().Board.ID, "falls back to the remaining board")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, setupBackend(t))

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
