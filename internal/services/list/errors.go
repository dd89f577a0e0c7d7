package list

import "github.com/thenoetrevino/kanban/internal/models"

// List-related errors. Each one matches models.ErrValidation.
var (
	ErrEmptyName      = &models.ValidationError{Field: "name", Message: "list name cannot be empty"}
	ErrNameTooLong    = &models.ValidationError{Field: "name", Message: "list name cannot exceed 100 characters"}
	ErrInvalidListID  = &models.ValidationError{Field: "id", Message: "invalid list ID"}
	ErrInvalidBoardID = &models.ValidationError{Field: "boardId", Message: "invalid board ID"}
	ErrInvalidOrder   = &models.ValidationError{Field: "orderedListIds", Message: "must be a sequence of list IDs"}
)
