package task

import (
	"context"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/models"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int64) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	// Ordering and movement
	ReorderTasks(ctx context.Context, req ReorderTasksRequest) error
	MoveTask(ctx context.Context, req MoveTaskRequest) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	ListID     int64
	Title      string
	AssignedTo *string
	DueDate    *string
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID     int64
	Title      *string
	AssignedTo *string
	DueDate    *string
}

// ReorderTasksRequest carries the new task order of ListID. Ids not yet in
// the list are moved into it.
type ReorderTasksRequest struct {
	ListID  int64
	TaskIDs []int64
}

// MoveTaskRequest places one task at Position within ListID
type MoveTaskRequest struct {
	TaskID   int64
	ListID   int64
	Position int
}

type repository interface {
	CreateTask(ctx context.Context, listID int64, fields models.TaskFields) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ReorderTasks(ctx context.Context, listID int64, ids []int64) error
	MoveTask(ctx context.Context, taskID, listID int64, index int) (*models.Task, error)
}

// service implements Service interface
type service struct {
	repo repository
}

// NewService creates a new task service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetTask returns a single task
func (s *service) GetTask(ctx context.Context, taskID int64) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTask(ctx, taskID)
}

// CreateTask handles task creation with validation; the task is appended to its list
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.ListID <= 0 {
		return nil, ErrInvalidListID
	}

	fields := models.TaskFields{
		Title:      models.CleanOptional(&req.Title),
		AssignedTo: models.CleanOptional(req.AssignedTo),
		DueDate:    models.CleanOptional(req.DueDate),
	}
	if err := validateTitle(*fields.Title); err != nil {
		return nil, err
	}
	if err := validateDueDate(fields.DueDate); err != nil {
		return nil, err
	}

	return s.repo.CreateTask(ctx, req.ListID, fields)
}

// UpdateTask applies only the provided fields
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	fields := models.TaskFields{
		Title:      models.CleanOptional(req.Title),
		AssignedTo: models.CleanOptional(req.AssignedTo),
		DueDate:    models.CleanOptional(req.DueDate),
	}
	if fields.Empty() {
		return nil, ErrNoFields
	}
	if fields.Title != nil {
		if err := validateTitle(*fields.Title); err != nil {
			return nil, err
		}
	}
	if err := validateDueDate(fields.DueDate); err != nil {
		return nil, err
	}

	return s.repo.UpdateTask(ctx, req.TaskID, fields)
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, taskID int64) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	return s.repo.DeleteTask(ctx, taskID)
}

// ReorderTasks applies a new task order to a list, moving in any tasks that
// currently sit in other lists of the same board
func (s *service) ReorderTasks(ctx context.Context, req ReorderTasksRequest) error {
	if req.ListID <= 0 {
		return ErrInvalidListID
	}
	if req.TaskIDs == nil {
		return ErrInvalidOrder
	}
	for _, id := range req.TaskIDs {
		if id <= 0 {
			return ErrInvalidOrder
		}
	}
	return s.repo.ReorderTasks(ctx, req.ListID, req.TaskIDs)
}

// MoveTask moves a task to a position in a list
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if req.ListID <= 0 {
		return nil, ErrInvalidListID
	}
	if req.Position < 0 {
		return nil, ErrInvalidPosition
	}
	return s.repo.MoveTask(ctx, req.TaskID, req.ListID, req.Position)
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// validateDueDate accepts nil, empty (clear) or a YYYY-MM-DD date.
func validateDueDate(due *string) error {
	if due == nil || *due == "" {
		return nil
	}
	if _, err := models.ParseDate(*due); err != nil {
		return ErrInvalidDueDate
	}
	return nil
}
