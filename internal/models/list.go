package models

// List is a named ordered container of tasks, positioned within a board.
// Position is dense and zero-based among the board's lists.
type List struct {
	ID       int64  `json:"list_id"`
	Name     string `json:"listName"`
	BoardID  int64  `json:"board_id"`
	Position int    `json:"list_order"`
	Tasks    []Task `json:"tasks"`
}

// GetID returns the list id.
func (l *List) GetID() int64 { return l.ID }
