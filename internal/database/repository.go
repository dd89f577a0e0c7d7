package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*BoardRepo
	*ListRepo
	*TaskRepo

	db *sql.DB
}

// Option configures a Repository.
type Option func(*conn)

// WithReorderConcurrency bounds how many position writes a bulk reorder
// issues at once. Values below one fall back to the default.
func WithReorderConcurrency(n int) Option {
	return func(c *conn) { c.reorderLimit = n }
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, dialect Dialect, opts ...Option) *Repository {
	c := &conn{db: db, dialect: dialect, reorderLimit: DefaultReorderConcurrency}
	for _, opt := range opts {
		opt(c)
	}
	return &Repository{
		BoardRepo: &BoardRepo{conn: c},
		ListRepo:  &ListRepo{conn: c},
		TaskRepo:  &TaskRepo{conn: c},
		db:        db,
	}
}

// Ping reports whether the store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Wrapper methods for BoardRepo to maintain a flat API
func (r *Repository) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	return r.BoardRepo.Create(ctx, name)
}

func (r *Repository) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return r.BoardRepo.GetAll(ctx)
}

func (r *Repository) RenameBoard(ctx context.Context, id int64, name string) error {
	return r.BoardRepo.Rename(ctx, id, name)
}

func (r *Repository) DeleteBoard(ctx context.Context, id int64) error {
	return r.BoardRepo.Delete(ctx, id)
}

// Wrapper methods for ListRepo
func (r *Repository) CreateList(ctx context.Context, boardID int64, name string) (*models.List, error) {
	return r.ListRepo.Create(ctx, boardID, name)
}

func (r *Repository) RenameList(ctx context.Context, id int64, name string) error {
	return r.ListRepo.Rename(ctx, id, name)
}

func (r *Repository) DeleteList(ctx context.Context, id int64) error {
	return r.ListRepo.Delete(ctx, id)
}

func (r *Repository) ReorderLists(ctx context.Context, boardID int64, ids []int64) error {
	return r.ListRepo.Reorder(ctx, boardID, ids)
}

// Wrapper methods for TaskRepo
func (r *Repository) CreateTask(ctx context.Context, listID int64, fields models.TaskFields) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, listID, fields)
}

func (r *Repository) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	return r.TaskRepo.Get(ctx, id)
}

func (r *Repository) UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (*models.Task, error) {
	return r.TaskRepo.Update(ctx, id, fields)
}

func (r *Repository) DeleteTask(ctx context.Context, id int64) error {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) ReorderTasks(ctx context.Context, listID int64, ids []int64) error {
	return r.TaskRepo.Reorder(ctx, listID, ids)
}

func (r *Repository) MoveTask(ctx context.Context, taskID, listID int64, index int) (*models.Task, error) {
	return r.TaskRepo.Move(ctx, taskID, listID, index)
}
