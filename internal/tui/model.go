// Package tui is the terminal client. It keeps no authoritative data: every
// mutation is sent to the REST API and the screen is rebuilt from a full
// re-fetch of the server state.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	log "github.com/sirupsen/logrus"

	"github.com/thenoetrevino/kanban/internal/config"
)

// actionKind identifies what a prompt or confirmation will do once accepted.
type actionKind int

const (
	actionNone actionKind = iota
	actionCreateBoard
	actionRenameBoard
	actionDeleteBoard
	actionCreateList
	actionRenameList
	actionDeleteList
	actionCreateTask
	actionEditTask
	actionDeleteTask
)

// pendingAction is the action waiting on text input or confirmation.
type pendingAction struct {
	kind    actionKind
	boardID int64
	listID  int64
	taskID  int64
}

// Model is the bubbletea model of the terminal client.
type Model struct {
	ctx     context.Context
	backend Backend
	log     *log.Logger

	state   *AppState
	keys    keyMap
	styles  Styles
	input   textinput.Model
	pending pendingAction
}

// New creates the model. Nothing is fetched until Init runs.
func New(ctx context.Context, backend Backend, cfg *config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.StandardLogger()
	}

	ti := textinput.New()
	ti.CharLimit = 255

	return Model{
		ctx:     ctx,
		backend: backend,
		log:     logger,
		state:   NewAppState(),
		keys:    newKeyMap(cfg.KeyMappings),
		styles:  NewStyles(cfg.ColorScheme),
		input:   ti,
	}
}

// Init loads the initial server state.
func (m Model) Init() tea.Cmd {
	return m.fetchCmd(0)
}

// State exposes the current application state.
func (m Model) State() *AppState {
	return m.state
}

// openBoardID is the id of the board on screen, or 0.
func (m Model) openBoardID() int64 {
	if m.state.Board == nil {
		return 0
	}
	return m.state.Board.ID
}

// Run starts the terminal client and blocks until it exits.
func Run(ctx context.Context, backend Backend, cfg *config.Config, logger *log.Logger) error {
	p := tea.NewProgram(New(ctx, backend, cfg, logger), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
