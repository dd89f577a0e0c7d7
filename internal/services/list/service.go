package list

import (
	"context"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/models"
)

const maxNameLength = 100

// Service defines list operations, including ordering within a board
type Service interface {
	CreateList(ctx context.Context, req CreateListRequest) (*models.List, error)
	RenameList(ctx context.Context, req RenameListRequest) error
	DeleteList(ctx context.Context, id int64) error
	ReorderLists(ctx context.Context, req ReorderListsRequest) error
}

// CreateListRequest encapsulates data for appending a list to a board
type CreateListRequest struct {
	BoardID int64
	Name    string
}

// RenameListRequest encapsulates data for renaming a list
type RenameListRequest struct {
	ID   int64
	Name string
}

// ReorderListsRequest carries the complete new list order of a board
type ReorderListsRequest struct {
	BoardID int64
	ListIDs []int64
}

type repository interface {
	CreateList(ctx context.Context, boardID int64, name string) (*models.List, error)
	RenameList(ctx context.Context, id int64, name string) error
	DeleteList(ctx context.Context, id int64) error
	ReorderLists(ctx context.Context, boardID int64, ids []int64) error
}

type service struct {
	repo repository
}

// NewService creates a new list service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// CreateList appends a list to the end of its board
func (s *service) CreateList(ctx context.Context, req CreateListRequest) (*models.List, error) {
	if req.BoardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	name := models.CleanText(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.repo.CreateList(ctx, req.BoardID, name)
}

// RenameList renames a list
func (s *service) RenameList(ctx context.Context, req RenameListRequest) error {
	if req.ID <= 0 {
		return ErrInvalidListID
	}
	name := models.CleanText(req.Name)
	if err := validateName(name); err != nil {
		return err
	}
	return s.repo.RenameList(ctx, req.ID, name)
}

// DeleteList deletes a list and its tasks
func (s *service) DeleteList(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidListID
	}
	return s.repo.DeleteList(ctx, id)
}

// ReorderLists applies a complete new order to a board's lists
func (s *service) ReorderLists(ctx context.Context, req ReorderListsRequest) error {
	if req.BoardID <= 0 {
		return ErrInvalidBoardID
	}
	if req.ListIDs == nil {
		return ErrInvalidOrder
	}
	for _, id := range req.ListIDs {
		if id <= 0 {
			return ErrInvalidOrder
		}
	}
	return s.repo.ReorderLists(ctx, req.BoardID, req.ListIDs)
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
