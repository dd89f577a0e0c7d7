package board

import "github.com/thenoetrevino/kanban/internal/models"

// Domain errors for board service. Each one matches models.ErrValidation.
var (
	ErrEmptyName      = &models.ValidationError{Field: "name", Message: "board name cannot be empty"}
	ErrNameTooLong    = &models.ValidationError{Field: "name", Message: "board name cannot exceed 100 characters"}
	ErrInvalidBoardID = &models.ValidationError{Field: "id", Message: "invalid board ID"}
)
