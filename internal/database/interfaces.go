package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardStore is the board half of the store, including the aggregate read.
type BoardStore interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardDetails(ctx context.Context, id int64) (*models.BoardDetails, error)
	RenameBoard(ctx context.Context, id int64, name string) error
	DeleteBoard(ctx context.Context, id int64) error
}

// ListStore persists lists and their order within a board.
type ListStore interface {
	CreateList(ctx context.Context, boardID int64, name string) (*models.List, error)
	RenameList(ctx context.Context, id int64, name string) error
	DeleteList(ctx context.Context, id int64) error
	ReorderLists(ctx context.Context, boardID int64, ids []int64) error
}

// TaskStore persists tasks, their order within a list and moves between lists.
type TaskStore interface {
	CreateTask(ctx context.Context, listID int64, fields models.TaskFields) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ReorderTasks(ctx context.Context, listID int64, ids []int64) error
	MoveTask(ctx context.Context, taskID, listID int64, index int) (*models.Task, error)
}

// DataStore defines the unified interface for all data operations.
type DataStore interface {
	BoardStore
	ListStore
	TaskStore
	Ping(ctx context.Context) error
}

var _ DataStore = (*Repository)(nil)
