package tui

import "github.com/thenoetrevino/kanban/internal/models"

// Pane identifies which half of the screen receives navigation keys.
type Pane int

const (
	BoardsPane Pane = iota
	BoardPane
)

// Mode is the input mode of the client.
type Mode int

const (
	NormalMode Mode = iota
	InputMode
	ConfirmMode
)

// NotificationLevel is the severity of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelError
)

// Notification is a single message shown in the status line.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// AppState is everything the client knows. It is replaced wholesale from
// the server after every mutation and only cursors and modes are local.
type AppState struct {
	Boards   []*models.Board
	BoardIdx int

	// Board is the open board as last fetched; nil when there are no boards.
	Board *models.BoardDetails

	ListIdx int
	TaskIdx int

	Pane Pane
	Mode Mode

	// Prompt labels the text input in InputMode, Question the yes/no
	// prompt in ConfirmMode. Creating is set when the input makes something
	// new rather than editing it.
	Prompt   string
	Question string
	Creating bool

	Notification *Notification

	Width  int
	Height int
}

// NewAppState returns an empty state focused on the boards pane.
func NewAppState() *AppState {
	return &AppState{Pane: BoardsPane}
}

// SelectedBoard returns the highlighted board summary, or nil.
func (s *AppState) SelectedBoard() *models.Board {
	if s.BoardIdx < 0 || s.BoardIdx >= len(s.Boards) {
		return nil
	}
	return s.Boards[s.BoardIdx]
}

// SelectedList returns the highlighted list of the open board, or nil.
func (s *AppState) SelectedList() *models.ListDetails {
	if s.Board == nil || s.ListIdx < 0 || s.ListIdx >= len(s.Board.Lists) {
		return nil
	}
	return s.Board.Lists[s.ListIdx]
}

// SelectedTask returns the highlighted task of the selected list, or nil.
func (s *AppState) SelectedTask() *models.Task {
	l := s.SelectedList()
	if l == nil || s.TaskIdx < 0 || s.TaskIdx >= len(l.Tasks) {
		return nil
	}
	return l.Tasks[s.TaskIdx]
}

// Notify replaces the current notification.
func (s *AppState) Notify(level NotificationLevel, msg string) {
	s.Notification = &Notification{Level: level, Message: msg}
}

// focus names the entities the cursors should land on after a sync.
// Zero ids mean "keep the current index".
type focus struct {
	boardID int64
	listID  int64
	taskID  int64
}

// apply replaces the domain data and repositions the cursors.
func (s *AppState) apply(boards []*models.Board, board *models.BoardDetails, f focus) {
	s.Boards = boards
	s.Board = board

	if board != nil {
		for i, b := range boards {
			if b.ID == board.ID {
				s.BoardIdx = i
				break
			}
		}
	}
	if board != nil && f.listID != 0 {
		for i, l := range board.Lists {
			if l.ID == f.listID {
				s.ListIdx = i
				break
			}
		}
	}
	if l := s.SelectedList(); l != nil && f.taskID != 0 {
		for i, t := range l.Tasks {
			if t.ID == f.taskID {
				s.TaskIdx = i
				break
			}
		}
	}
	s.clamp()
}

// clamp keeps every cursor inside the data it points into.
func (s *AppState) clamp() {
	s.BoardIdx = clampIndex(s.BoardIdx, len(s.Boards))
	if s.Board == nil {
		s.ListIdx, s.TaskIdx = 0, 0
		return
	}
	s.ListIdx = clampIndex(s.ListIdx, len(s.Board.Lists))
	if l := s.SelectedList(); l != nil {
		s.TaskIdx = clampIndex(s.TaskIdx, len(l.Tasks))
	} else {
		s.TaskIdx = 0
	}
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
