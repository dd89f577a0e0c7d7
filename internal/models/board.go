package models

// Board is the top-level container owning an ordered set of lists.
type Board struct {
	ID   int64  `json:"board_id"`
	Name string `json:"boardName"`
}

// BoardDetails is the nested read model returned by the aggregate reader:
// the board, its lists ordered by position and each list's tasks ordered by position.
type BoardDetails struct {
	ID    int64          `json:"board_id"`
	Name  string         `json:"boardName"`
	Lists []*ListDetails `json:"lists"`
}

// ListDetails is a list with its tasks, as embedded in BoardDetails
type ListDetails struct {
	ID       int64   `json:"list_id"`
	Name     string  `json:"listName"`
	Position int     `json:"list_order"`
	Tasks    []*Task `json:"tasks"`
}

// FindList returns the list with the given id, or nil.
func (b *BoardDetails) FindList(id int64) *ListDetails {
	if b == nil {
		return nil
	}
	for _, l := range b.Lists {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// ListIDs returns the ids of the board's lists in position order.
func (b *BoardDetails) ListIDs() []int64 {
	if b == nil {
		return nil
	}
	ids := make([]int64, 0, len(b.Lists))
	for _, l := range b.Lists {
		ids = append(ids, l.ID)
	}
	return ids
}

// TaskIDs returns the ids of the list's tasks in position order.
func (l *ListDetails) TaskIDs() []int64 {
	ids := make([]int64, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

// GetID returns the board id.
func (b *Board) GetID() int64 { return b.ID }
