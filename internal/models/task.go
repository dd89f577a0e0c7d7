package models

// Task is a unit of work positioned within a list.
// Position is dense and zero-based among the list's tasks.
type Task struct {
	ID         int64   `json:"task_id"`
	ListID     int64   `json:"list_id"`
	Title      string  `json:"taskName"`
	AssignedTo *string `json:"assignedTo"`
	DueDate    *Date   `json:"dueDate"`
	Position   int     `json:"task_order"`
}

// TaskFields carries the user-editable task fields.
// Nil pointers mean "not provided".
type TaskFields struct {
	Title      *string
	AssignedTo *string
	DueDate    *string
}

// Empty reports whether no field was provided.
func (f TaskFields) Empty() bool {
	return f.Title == nil && f.AssignedTo == nil && f.DueDate == nil
}

// GetID returns the task id.
func (t *Task) GetID() int64 { return t.ID }
