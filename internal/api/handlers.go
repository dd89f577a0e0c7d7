package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/services/list"
	"github.com/thenoetrevino/kanban/internal/services/task"
)

type handlers struct {
	app     *app.App
	log     *log.Logger
	schemas schemaSet
}

// Register wires up all API routes under /api on the provided Echo instance.
func Register(e *echo.Echo, a *app.App, logger *log.Logger) error {
	schemas, err := compileSchemas()
	if err != nil {
		return err
	}
	h := &handlers{app: a, log: logger, schemas: schemas}

	g := e.Group("/api")
	g.GET("/health", h.health)
	g.GET("/ready", h.ready)

	g.POST("/boards", h.createBoard)
	g.GET("/boards", h.getBoards)
	g.GET("/boards/:id", h.getBoard)
	g.PUT("/boards/:id", h.renameBoard)
	g.DELETE("/boards/:id", h.deleteBoard)
	g.PUT("/boards/:id/lists/order", h.reorderLists)

	g.POST("/boards/:id/lists", h.createList)
	g.PUT("/lists/:id", h.renameList)
	g.DELETE("/lists/:id", h.deleteList)
	g.PUT("/lists/:id/tasks/order", h.reorderTasks)

	g.POST("/lists/:id/tasks", h.createTask)
	g.PUT("/tasks/:id", h.updateTask)
	g.DELETE("/tasks/:id", h.deleteTask)
	g.PUT("/tasks/:id/move", h.moveTask)
	return nil
}

func ok(c echo.Context, status int, msg string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: msg, Data: data})
}

func (h *handlers) health(c echo.Context) error {
	return ok(c, http.StatusOK, "ok", nil)
}

func (h *handlers) ready(c echo.Context) error {
	if err := h.app.Ready(c.Request().Context()); err != nil {
		h.log.WithError(err).Warn("readiness check failed")
		return c.JSON(http.StatusServiceUnavailable, Envelope{Success: false, Message: "database unavailable"})
	}
	return ok(c, http.StatusOK, "ready", nil)
}

// ============================================================================
// Boards
// ============================================================================

func (h *handlers) createBoard(c echo.Context) error {
	const failMsg = "Failed to create board."
	var req nameRequest
	if err := h.decodeBody(c, "name.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	b, err := h.app.BoardService.CreateBoard(c.Request().Context(), board.CreateBoardRequest{Name: req.Name})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusCreated, "Board created successfully", b)
}

func (h *handlers) getBoards(c echo.Context) error {
	boards, err := h.app.BoardService.GetAllBoards(c.Request().Context())
	if err != nil {
		return h.fail(c, "Failed to fetch boards.", err)
	}
	return ok(c, http.StatusOK, "Fetched all boards successfully", boards)
}

func (h *handlers) getBoard(c echo.Context) error {
	const failMsg = "Failed to fetch board."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	details, err := h.app.BoardService.GetBoardDetails(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Fetched board details successfully", details)
}

func (h *handlers) renameBoard(c echo.Context) error {
	const failMsg = "Failed to update board."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req nameRequest
	if err := h.decodeBody(c, "name.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	if err := h.app.BoardService.RenameBoard(c.Request().Context(), board.RenameBoardRequest{ID: id, Name: req.Name}); err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Board updated successfully.", nil)
}

func (h *handlers) deleteBoard(c echo.Context) error {
	const failMsg = "Failed to delete board."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	if err := h.app.BoardService.DeleteBoard(c.Request().Context(), id); err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Board deleted successfully.", nil)
}

func (h *handlers) reorderLists(c echo.Context) error {
	const failMsg = "Failed to update list order."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req reorderListsRequest
	if err := h.decodeBody(c, "reorder-lists.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	err = h.app.ListService.ReorderLists(c.Request().Context(), list.ReorderListsRequest{
		BoardID: id,
		ListIDs: req.OrderedListIDs,
	})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "List order updated.", nil)
}

// ============================================================================
// Lists
// ============================================================================

func (h *handlers) createList(c echo.Context) error {
	const failMsg = "Failed to create list."
	boardID, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req nameRequest
	if err := h.decodeBody(c, "name.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	l, err := h.app.ListService.CreateList(c.Request().Context(), list.CreateListRequest{BoardID: boardID, Name: req.Name})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusCreated, "List created successfully", l)
}

func (h *handlers) renameList(c echo.Context) error {
	const failMsg = "Failed to update list."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req nameRequest
	if err := h.decodeBody(c, "name.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	if err := h.app.ListService.RenameList(c.Request().Context(), list.RenameListRequest{ID: id, Name: req.Name}); err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "List updated successfully.", nil)
}

func (h *handlers) deleteList(c echo.Context) error {
	const failMsg = "Failed to delete list."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	if err := h.app.ListService.DeleteList(c.Request().Context(), id); err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "List deleted successfully.", nil)
}

func (h *handlers) reorderTasks(c echo.Context) error {
	const failMsg = "Failed to update task order."
	listID, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req reorderTasksRequest
	if err := h.decodeBody(c, "reorder-tasks.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	if req.NewParentListID != nil {
		listID = *req.NewParentListID
	}
	err = h.app.TaskService.ReorderTasks(c.Request().Context(), task.ReorderTasksRequest{
		ListID:  listID,
		TaskIDs: req.OrderedTaskIDs,
	})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Task order updated.", nil)
}

// ============================================================================
// Tasks
// ============================================================================

func (h *handlers) createTask(c echo.Context) error {
	const failMsg = "Failed to create task."
	listID, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req createTaskRequest
	if err := h.decodeBody(c, "create-task.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	t, err := h.app.TaskService.CreateTask(c.Request().Context(), task.CreateTaskRequest{
		ListID:     listID,
		Title:      req.Text,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusCreated, "Task created successfully", t)
}

func (h *handlers) updateTask(c echo.Context) error {
	const failMsg = "Failed to update task."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req updateTaskRequest
	if err := h.decodeBody(c, "update-task.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	t, err := h.app.TaskService.UpdateTask(c.Request().Context(), task.UpdateTaskRequest{
		TaskID:     id,
		Title:      req.Text,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Task updated successfully.", t)
}

func (h *handlers) deleteTask(c echo.Context) error {
	const failMsg = "Failed to delete task."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	if err := h.app.TaskService.DeleteTask(c.Request().Context(), id); err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Task deleted successfully.", nil)
}

func (h *handlers) moveTask(c echo.Context) error {
	const failMsg = "Failed to move task."
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	var req moveTaskRequest
	if err := h.decodeBody(c, "move-task.json", &req); err != nil {
		return h.fail(c, failMsg, err)
	}
	t, err := h.app.TaskService.MoveTask(c.Request().Context(), task.MoveTaskRequest{
		TaskID:   id,
		ListID:   req.ListID,
		Position: req.Position,
	})
	if err != nil {
		return h.fail(c, failMsg, err)
	}
	return ok(c, http.StatusOK, "Task moved successfully.", t)
}
