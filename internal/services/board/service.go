package board

import (
	"context"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/models"
)

const maxNameLength = 100

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardDetails(ctx context.Context, id int64) (*models.BoardDetails, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	RenameBoard(ctx context.Context, req RenameBoardRequest) error
	DeleteBoard(ctx context.Context, id int64) error
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Name string
}

// RenameBoardRequest encapsulates data for renaming a board
type RenameBoardRequest struct {
	ID   int64
	Name string
}

// repository defines the data access methods needed by the board service
type repository interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardDetails(ctx context.Context, id int64) (*models.BoardDetails, error)
	RenameBoard(ctx context.Context, id int64, name string) error
	DeleteBoard(ctx context.Context, id int64) error
}

type service struct {
	repo repository
}

// NewService creates a new board service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllBoards returns every board ordered by name
func (s *service) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return s.repo.GetAllBoards(ctx)
}

// GetBoardDetails returns a board with its lists and their tasks
func (s *service) GetBoardDetails(ctx context.Context, id int64) (*models.BoardDetails, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetBoardDetails(ctx, id)
}

// CreateBoard creates a new board with validation
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	name := models.CleanText(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.repo.CreateBoard(ctx, name)
}

// RenameBoard renames an existing board
func (s *service) RenameBoard(ctx context.Context, req RenameBoardRequest) error {
	if req.ID <= 0 {
		return ErrInvalidBoardID
	}
	name := models.CleanText(req.Name)
	if err := validateName(name); err != nil {
		return err
	}
	return s.repo.RenameBoard(ctx, req.ID, name)
}

// DeleteBoard deletes a board along with its lists and tasks
func (s *service) DeleteBoard(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}
	return s.repo.DeleteBoard(ctx, id)
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
