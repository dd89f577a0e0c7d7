// Package client is a typed HTTP client for the kanban REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/thenoetrevino/kanban/internal/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client wraps http.Client with helpers for the API's JSON envelope.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a Client for baseURL, e.g. "http://localhost:8080/api".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// TaskInput carries the fields of a new task.
type TaskInput struct {
	Text       string  `json:"text"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	DueDate    *string `json:"dueDate,omitempty"`
}

// TaskPatch carries the fields to change; nil fields are left as they are
// and an empty string clears AssignedTo or DueDate.
type TaskPatch struct {
	Text       *string `json:"text,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	DueDate    *string `json:"dueDate,omitempty"`
}

type nameBody struct {
	Name string `json:"name"`
}

type listOrderBody struct {
	OrderedListIDs []int64 `json:"orderedListIds"`
}

type taskOrderBody struct {
	OrderedTaskIDs []int64 `json:"orderedTaskIds"`
}

type moveBody struct {
	ListID   int64 `json:"listId"`
	Position int   `json:"position"`
}

// do sends body as JSON and decodes the envelope's data into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// Ready reports whether the server and its store answer.
func (c *Client) Ready(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ready", nil, nil)
}

// ============================================================================
// Boards
// ============================================================================

func (c *Client) ListBoards(ctx context.Context) ([]*models.Board, error) {
	var boards []*models.Board
	if err := c.do(ctx, http.MethodGet, "/boards", nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *Client) GetBoard(ctx context.Context, id int64) (*models.BoardDetails, error) {
	var details models.BoardDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/boards/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodPost, "/boards", nameBody{Name: name}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) RenameBoard(ctx context.Context, id int64, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/boards/%d", id), nameBody{Name: name}, nil)
}

func (c *Client) DeleteBoard(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/boards/%d", id), nil, nil)
}

// ReorderLists sends the complete new list order of a board.
func (c *Client) ReorderLists(ctx context.Context, boardID int64, listIDs []int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/boards/%d/lists/order", boardID),
		listOrderBody{OrderedListIDs: listIDs}, nil)
}

// ============================================================================
// Lists
// ============================================================================

func (c *Client) CreateList(ctx context.Context, boardID int64, name string) (*models.List, error) {
	var l models.List
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/boards/%d/lists", boardID), nameBody{Name: name}, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) RenameList(ctx context.Context, id int64, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/lists/%d", id), nameBody{Name: name}, nil)
}

func (c *Client) DeleteList(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lists/%d", id), nil, nil)
}

// ReorderTasks sends the complete new task order of listID. Ids of tasks in
// other lists of the same board are moved into listID.
func (c *Client) ReorderTasks(ctx context.Context, listID int64, taskIDs []int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/lists/%d/tasks/order", listID),
		taskOrderBody{OrderedTaskIDs: taskIDs}, nil)
}

// ============================================================================
// Tasks
// ============================================================================

func (c *Client) CreateTask(ctx context.Context, listID int64, in TaskInput) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/lists/%d/tasks", listID), in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, patch TaskPatch) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), patch, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// MoveTask places a task at position within listID; positions past the end
// append.
func (c *Client) MoveTask(ctx context.Context, id, listID int64, position int) (*models.Task, error) {
	var t models.Task
	body := moveBody{ListID: listID, Position: position}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/move", id), body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
