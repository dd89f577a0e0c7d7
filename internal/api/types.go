package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// Envelope wraps every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type createTaskRequest struct {
	Text       string  `json:"text"`
	AssignedTo *string `json:"assignedTo"`
	DueDate    *string `json:"dueDate"`
}

// updateTaskRequest fields are optional; an absent or null field is left
// unchanged and an empty string clears assignedTo or dueDate.
type updateTaskRequest struct {
	Text       *string `json:"text"`
	AssignedTo *string `json:"assignedTo"`
	DueDate    *string `json:"dueDate"`
}

// idList decodes an array of ids given as numbers or as numeric strings,
// the form browsers produce from data attributes.
type idList []int64

var numberConfig = sonic.Config{UseNumber: true}.Froze()

func (l *idList) UnmarshalJSON(b []byte) error {
	var items []any
	if err := numberConfig.Unmarshal(b, &items); err != nil {
		return err
	}

	ids := make(idList, 0, len(items))
	for i, item := range items {
		var s string
		switch v := item.(type) {
		case json.Number:
			s = v.String()
		case string:
			s = v
		default:
			return fmt.Errorf("id %d: expected integer or string, got %T", i, item)
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("id %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

type reorderListsRequest struct {
	OrderedListIDs idList `json:"orderedListIds"`
}

// reorderTasksRequest targets NewParentListID when set, else the list in the path.
type reorderTasksRequest struct {
	OrderedTaskIDs  idList  `json:"orderedTaskIds"`
	NewParentListID *int64  `json:"newParentListId"`
}

type moveTaskRequest struct {
	ListID   int64 `json:"listId"`
	Position int   `json:"position"`
}
