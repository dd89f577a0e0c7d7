package task

import "github.com/thenoetrevino/kanban/internal/models"

// Task-related errors. Each one matches models.ErrValidation.
var (
	// Validation errors
	ErrEmptyTitle      = &models.ValidationError{Field: "text", Message: "task text cannot be empty"}
	ErrTitleTooLong    = &models.ValidationError{Field: "text", Message: "task text cannot exceed 255 characters"}
	ErrInvalidTaskID   = &models.ValidationError{Field: "id", Message: "invalid task ID"}
	ErrInvalidListID   = &models.ValidationError{Field: "listId", Message: "invalid list ID"}
	ErrInvalidDueDate  = &models.ValidationError{Field: "dueDate", Message: "due date must be a YYYY-MM-DD date"}
	ErrInvalidPosition = &models.ValidationError{Field: "position", Message: "invalid position: must be >= 0"}
	ErrInvalidOrder    = &models.ValidationError{Field: "orderedTaskIds", Message: "must be a sequence of task IDs"}
	ErrNoFields        = &models.ValidationError{Message: "at least one of text, assignedTo or dueDate is required"}
)
