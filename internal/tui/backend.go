package tui

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/client"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Backend is the part of the REST client the terminal client needs.
type Backend interface {
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id int64) (*models.BoardDetails, error)
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	RenameBoard(ctx context.Context, id int64, name string) error
	DeleteBoard(ctx context.Context, id int64) error
	ReorderLists(ctx context.Context, boardID int64, listIDs []int64) error

	CreateList(ctx context.Context, boardID int64, name string) (*models.List, error)
	RenameList(ctx context.Context, id int64, name string) error
	DeleteList(ctx context.Context, id int64) error
	ReorderTasks(ctx context.Context, listID int64, taskIDs []int64) error

	CreateTask(ctx context.Context, listID int64, in client.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, patch client.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	MoveTask(ctx context.Context, id, listID int64, position int) (*models.Task, error)
}

var _ Backend = (*client.Client)(nil)
