package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupTestServer builds the full echo stack over an in-memory SQLite store.
func setupTestServer(t *testing.T) (*echo.Echo, *app.App) {
	t.Helper()

	ctx := context.Background()
	db, dialect, err := database.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := quietLogger()
	a := app.NewFromDB(db, dialect, app.WithLogger(logger))

	e, err := NewServer(a, config.ServerConfig{CORSOrigins: []string{"*"}, BodyLimit: "1M"}, logger)
	require.NoError(t, err)
	return e, a
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(env.Data, &v))
	return v
}

func createBoard(t *testing.T, e *echo.Echo, name string) *models.Board {
	t.Helper()
	rec, env := do(t, e, http.MethodPost, "/api/boards", fmt.Sprintf(`{"name": %q}`, name))
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	return decodeData[*models.Board](t, env)
}

func createList(t *testing.T, e *echo.Echo, boardID int64, name string) *models.List {
	t.Helper()
	rec, env := do(t, e, http.MethodPost, fmt.Sprintf("/api/boards/%d/lists", boardID), fmt.Sprintf(`{"name": %q}`, name))
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	return decodeData[*models.List](t, env)
}

func createTask(t *testing.T, e *echo.Echo, listID int64, text string) *models.Task {
	t.Helper()
	rec, env := do(t, e, http.MethodPost, fmt.Sprintf("/api/lists/%d/tasks", listID), fmt.Sprintf(`{"text": %q}`, text))
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	return decodeData[*models.Task](t, env)
}

func boardDetails(t *testing.T, e *echo.Echo, boardID int64) *models.BoardDetails {
	t.Helper()
	rec, env := do(t, e, http.MethodGet, fmt.Sprintf("/api/boards/%d", boardID), "")
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	return decodeData[*models.BoardDetails](t, env)
}

func TestHealth(t *testing.T) {
	e, _ := setupTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec, env = do(t, e, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestCORS(t *testing.T) {
	e, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestBoardLifecycle(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "  Sprint 1  ")
	assert.Equal(t, "Sprint 1", b.Name)
	assert.Positive(t, b.ID)

	rec, env := do(t, e, http.MethodGet, "/api/boards", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fetched all boards successfully", env.Message)
	boards := decodeData[[]*models.Board](t, env)
	require.Len(t, boards, 1)
	assert.Equal(t, b.ID, boards[0].ID)

	rec, env = do(t, e, http.MethodPut, fmt.Sprintf("/api/boards/%d", b.ID), `{"name": "Sprint 2"}`)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	assert.Equal(t, "Board updated successfully.", env.Message)
	assert.Equal(t, "Sprint 2", boardDetails(t, e, b.ID).Name)

	rec, env = do(t, e, http.MethodDelete, fmt.Sprintf("/api/boards/%d", b.ID), "")
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	assert.Equal(t, "Board deleted successfully.", env.Message)

	rec, env = do(t, e, http.MethodGet, fmt.Sprintf("/api/boards/%d", b.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestEmptyBoardListIsArray(t *testing.T) {
	e, _ := setupTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/api/boards", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(env.Data))
}

func TestValidationFailures(t *testing.T) {
	e, _ := setupTestServer(t)
	b := createBoard(t, e, "Board")
	l := createList(t, e, b.ID, "Todo")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"missing name", http.MethodPost, "/api/boards", `{}`},
		{"empty name", http.MethodPost, "/api/boards", `{"name": ""}`},
		{"blank name", http.MethodPost, "/api/boards", `{"name": "   "}`},
		{"name wrong type", http.MethodPost, "/api/boards", `{"name": 7}`},
		{"not json", http.MethodPost, "/api/boards", `name=x`},
		{"bad path id", http.MethodGet, "/api/boards/abc", ""},
		{"zero path id", http.MethodDelete, "/api/boards/0", ""},
		{"missing task text", http.MethodPost, fmt.Sprintf("/api/lists/%d/tasks", l.ID), `{"assignedTo": "sam"}`},
		{"bad due date", http.MethodPost, fmt.Sprintf("/api/lists/%d/tasks", l.ID), `{"text": "x", "dueDate": "tomorrow"}`},
		{"non-integer order", http.MethodPut, fmt.Sprintf("/api/boards/%d/lists/order", b.ID), `{"orderedListIds": ["a"]}`},
		{"missing order", http.MethodPut, fmt.Sprintf("/api/lists/%d/tasks/order", l.ID), `{}`},
		{"negative position", http.MethodPut, "/api/tasks/1/move", fmt.Sprintf(`{"listId": %d, "position": -1}`, l.ID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, env.Message)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestNotFound(t *testing.T) {
	e, _ := setupTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"board details", http.MethodGet, "/api/boards/999", ""},
		{"rename board", http.MethodPut, "/api/boards/999", `{"name": "x"}`},
		{"delete board", http.MethodDelete, "/api/boards/999", ""},
		{"create list", http.MethodPost, "/api/boards/999/lists", `{"name": "x"}`},
		{"rename list", http.MethodPut, "/api/lists/999", `{"name": "x"}`},
		{"create task", http.MethodPost, "/api/lists/999/tasks", `{"text": "x"}`},
		{"update task", http.MethodPut, "/api/tasks/999", `{"text": "x"}`},
		{"delete task", http.MethodDelete, "/api/tasks/999", ""},
		{"reorder lists", http.MethodPut, "/api/boards/999/lists/order", `{"orderedListIds": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code, env.Message)
			assert.False(t, env.Success)
		})
	}
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	e, _ := setupTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

// TestSprintScenario walks the drag-and-drop flow: a task dragged from Todo
// into Doing is reported by the client as a reorder of Doing.
func TestSprintScenario(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Sprint 1")
	todo := createList(t, e, b.ID, "Todo")
	doing := createList(t, e, b.ID, "Doing")
	done := createList(t, e, b.ID, "Done")
	assert.Equal(t, []int{0, 1, 2}, []int{todo.Position, doing.Position, done.Position})

	task := createTask(t, e, todo.ID, "Fix bug")
	assert.Equal(t, 0, task.Position)

	rec, env := do(t, e, http.MethodPut, fmt.Sprintf("/api/lists/%d/tasks/order", doing.ID),
		fmt.Sprintf(`{"orderedTaskIds": [%d]}`, task.ID))
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	assert.Equal(t, "Task order updated.", env.Message)

	details := boardDetails(t, e, b.ID)
	require.Len(t, details.Lists, 3)
	assert.Empty(t, details.FindList(todo.ID).Tasks)
	moved := details.FindList(doing.ID).Tasks
	require.Len(t, moved, 1)
	assert.Equal(t, task.ID, moved[0].ID)
	assert.Equal(t, doing.ID, moved[0].ListID)
	assert.Equal(t, 0, moved[0].Position)
}

func TestReorderTasksHonoursNewParentListID(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Board")
	todo := createList(t, e, b.ID, "Todo")
	doing := createList(t, e, b.ID, "Doing")
	first := createTask(t, e, todo.ID, "first")
	existing := createTask(t, e, doing.ID, "existing")

	body := fmt.Sprintf(`{"orderedTaskIds": [%d, %d], "newParentListId": %d}`, first.ID, existing.ID, doing.ID)
	rec, env := do(t, e, http.MethodPut, fmt.Sprintf("/api/lists/%d/tasks/order", todo.ID), body)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	details := boardDetails(t, e, b.ID)
	assert.Equal(t, []int64{first.ID, existing.ID}, details.FindList(doing.ID).TaskIDs())
	assert.Empty(t, details.FindList(todo.ID).Tasks)
}

func TestReorderAcceptsStringIDs(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Board")
	todo := createList(t, e, b.ID, "Todo")
	doing := createList(t, e, b.ID, "Doing")
	task := createTask(t, e, todo.ID, "Fix bug")

	body := fmt.Sprintf(`{"orderedTaskIds": ["%d"]}`, task.ID)
	rec, env := do(t, e, http.MethodPut, fmt.Sprintf("/api/lists/%d/tasks/order", doing.ID), body)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	body = fmt.Sprintf(`{"orderedListIds": ["%d", %d]}`, doing.ID, todo.ID)
	rec, env = do(t, e, http.MethodPut, fmt.Sprintf("/api/boards/%d/lists/order", b.ID), body)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	details := boardDetails(t, e, b.ID)
	assert.Equal(t, []int64{doing.ID, todo.ID}, details.ListIDs())
	assert.Equal(t, []int64{task.ID}, details.FindList(doing.ID).TaskIDs())
	assert.Empty(t, details.FindList(todo.ID).Tasks)

	rec, env = do(t, e, http.MethodPut, fmt.Sprintf("/api/boards/%d/lists/order", b.ID), `{"orderedListIds": ["abc"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestReorderLists(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Board")
	a := createList(t, e, b.ID, "A")
	bl := createList(t, e, b.ID, "B")
	c := createList(t, e, b.ID, "C")
	path := fmt.Sprintf("/api/boards/%d/lists/order", b.ID)

	rec, env := do(t, e, http.MethodPut, path, fmt.Sprintf(`{"orderedListIds": [%d, %d, %d]}`, c.ID, a.ID, bl.ID))
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	assert.Equal(t, "List order updated.", env.Message)
	assert.Equal(t, []int64{c.ID, a.ID, bl.ID}, boardDetails(t, e, b.ID).ListIDs())

	// An omission is rejected and leaves the order untouched.
	rec, env = do(t, e, http.MethodPut, path, fmt.Sprintf(`{"orderedListIds": [%d, %d]}`, a.ID, c.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, []int64{c.ID, a.ID, bl.ID}, boardDetails(t, e, b.ID).ListIDs())
}

func TestTaskUpdateAndDelete(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Board")
	l := createList(t, e, b.ID, "Todo")
	rec, env := do(t, e, http.MethodPost, fmt.Sprintf("/api/lists/%d/tasks", l.ID),
		`{"text": "Write docs", "assignedTo": "sam", "dueDate": "2024-05-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	task := decodeData[*models.Task](t, env)
	require.NotNil(t, task.AssignedTo)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-05-01", task.DueDate.String())

	rec, env = do(t, e, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), `{"text": "Write better docs"}`)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	updated := decodeData[*models.Task](t, env)
	assert.Equal(t, "Write better docs", updated.Title)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, "sam", *updated.AssignedTo)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, "2024-05-01", updated.DueDate.String())

	rec, _ = do(t, e, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "an update without fields is rejected")

	second := createTask(t, e, l.ID, "second")
	rec, env = do(t, e, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), "")
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	remaining := boardDetails(t, e, b.ID).FindList(l.ID).Tasks
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
	assert.Equal(t, 0, remaining[0].Position)
}

func TestMoveTask(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Board")
	todo := createList(t, e, b.ID, "Todo")
	doing := createList(t, e, b.ID, "Doing")
	moving := createTask(t, e, todo.ID, "moving")
	stay := createTask(t, e, todo.ID, "stay")
	d1 := createTask(t, e, doing.ID, "d1")
	d2 := createTask(t, e, doing.ID, "d2")

	rec, env := do(t, e, http.MethodPut, fmt.Sprintf("/api/tasks/%d/move", moving.ID),
		fmt.Sprintf(`{"listId": %d, "position": 1}`, doing.ID))
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	moved := decodeData[*models.Task](t, env)
	assert.Equal(t, doing.ID, moved.ListID)
	assert.Equal(t, 1, moved.Position)

	details := boardDetails(t, e, b.ID)
	assert.Equal(t, []int64{d1.ID, moving.ID, d2.ID}, details.FindList(doing.ID).TaskIDs())
	assert.Equal(t, []int64{stay.ID}, details.FindList(todo.ID).TaskIDs())
	assert.Equal(t, 0, details.FindList(todo.ID).Tasks[0].Position)
}

func TestListRenameAndDelete(t *testing.T) {
	e, _ := setupTestServer(t)

	b := createBoard(t, e, "Board")
	a := createList(t, e, b.ID, "A")
	mid := createList(t, e, b.ID, "B")
	c := createList(t, e, b.ID, "C")

	rec, env := do(t, e, http.MethodPut, fmt.Sprintf("/api/lists/%d", a.ID), `{"name": "Alpha"}`)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	rec, env = do(t, e, http.MethodDelete, fmt.Sprintf("/api/lists/%d", mid.ID), "")
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	details := boardDetails(t, e, b.ID)
	require.Len(t, details.Lists, 2)
	assert.Equal(t, "Alpha", details.Lists[0].Name)
	assert.Equal(t, c.ID, details.Lists[1].ID)
	assert.Equal(t, 1, details.Lists[1].Position)
}

func TestStoreFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	db, dialect, err := database.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)

	logger := quietLogger()
	a := app.NewFromDB(db, dialect, app.WithLogger(logger))
	e, err := NewServer(a, config.ServerConfig{}, logger)
	require.NoError(t, err)

	require.NoError(t, db.Close())

	rec, env := do(t, e, http.MethodGet, "/api/boards", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Failed to fetch boards.", env.Message)

	rec, env = do(t, e, http.MethodPost, "/api/boards", `{"name": "x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create board.", env.Message)

	rec, _ = do(t, e, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	e, _ := setupTestServer(t)

	huge := fmt.Sprintf(`{"name": %q}`, strings.Repeat("x", 2<<20))
	rec, env := do(t, e, http.MethodPost, "/api/boards", huge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, env.Success)
}

func TestBodyLimitWithoutContentLength(t *testing.T) {
	e, _ := setupTestServer(t)

	huge := fmt.Sprintf(`{"name": %q}`, strings.Repeat("x", 2<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/boards", io.MultiReader(strings.NewReader(huge)))
	req.ContentLength = -1
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var env testEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
}
