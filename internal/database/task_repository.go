package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/position"
)

const taskColumns = `task_id, list_id, taskName, assignedTo, dueDate, task_order`

// TaskRepo handles task persistence, ordering within a list and moves
// between lists.
type TaskRepo struct {
	*conn
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		t        models.Task
		assigned sql.NullString
		due      sql.NullString
	)
	if err := row.Scan(&t.ID, &t.ListID, &t.Title, &assigned, &due, &t.Position); err != nil {
		return nil, err
	}
	t.AssignedTo = NullStringToPtr(assigned)
	date, err := nullDate(due)
	if err != nil {
		return nil, err
	}
	t.DueDate = date
	return &t, nil
}

// dueDateValue validates an optional YYYY-MM-DD string. Empty clears.
func dueDateValue(s *string) (any, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := models.ParseDate(*s)
	if err != nil {
		return nil, models.NewValidationError("dueDate", "must be a date in YYYY-MM-DD form")
	}
	return d.String(), nil
}

// Create appends a task to the end of its list.
func (r *TaskRepo) Create(ctx context.Context, listID int64, fields models.TaskFields) (_ *models.Task, err error) {
	ctx, span := startSpan(ctx, "CreateTask", listAttr(listID))
	defer func() { endSpan(span, err) }()

	if fields.Title == nil {
		return nil, models.NewValidationError("text", "is required")
	}
	if err := requireName("text", *fields.Title); err != nil {
		return nil, err
	}
	due, err := dueDateValue(fields.DueDate)
	if err != nil {
		return nil, err
	}

	var task *models.Task
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := r.lockList(ctx, tx, listID); err != nil {
			return err
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			r.q(`SELECT COUNT(*) FROM tasks WHERE list_id = ?`), listID,
		).Scan(&count); err != nil {
			return err
		}

		var err error
		task, err = scanTask(tx.QueryRowContext(ctx,
			r.q(`INSERT INTO tasks (list_id, taskName, assignedTo, dueDate, task_order)
			 VALUES (?, ?, ?, ?, ?)
			 RETURNING `+taskColumns),
			listID, *fields.Title, nullableString(fields.AssignedTo), due, position.Next(count),
		))
		return err
	})
	if err != nil {
		return nil, storeErr("create task", err)
	}
	return task, nil
}

// Get returns a single task.
func (r *TaskRepo) Get(ctx context.Context, id int64) (_ *models.Task, err error) {
	ctx, span := startSpan(ctx, "GetTask", taskAttr(id))
	defer func() { endSpan(span, err) }()

	task, err := scanTask(r.db.QueryRowContext(ctx,
		r.q(`SELECT `+taskColumns+` FROM tasks WHERE task_id = ?`), id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound("task", id)
	}
	if err != nil {
		return nil, storeErr("get task", err)
	}
	return task, nil
}

// Update applies the provided fields and leaves the rest unchanged. An empty
// assignee or due date clears that field.
func (r *TaskRepo) Update(ctx context.Context, id int64, fields models.TaskFields) (_ *models.Task, err error) {
	ctx, span := startSpan(ctx, "UpdateTask", taskAttr(id))
	defer func() { endSpan(span, err) }()

	if fields.Empty() {
		return nil, models.NewValidationError("", "at least one of text, assignedTo or dueDate is required")
	}

	var (
		sets []string
		args []any
	)
	if fields.Title != nil {
		if err := requireName("text", *fields.Title); err != nil {
			return nil, err
		}
		sets = append(sets, "taskName = ?")
		args = append(args, *fields.Title)
	}
	if fields.AssignedTo != nil {
		sets = append(sets, "assignedTo = ?")
		args = append(args, nullableString(fields.AssignedTo))
	}
	if fields.DueDate != nil {
		due, err := dueDateValue(fields.DueDate)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "dueDate = ?")
		args = append(args, due)
	}
	args = append(args, id)

	task, err := scanTask(r.db.QueryRowContext(ctx,
		r.q(`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE task_id = ? RETURNING `+taskColumns),
		args...,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound("task", id)
	}
	if err != nil {
		return nil, storeErr("update task", err)
	}
	return task, nil
}

// Delete removes a task and closes the gap it leaves in its list.
func (r *TaskRepo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "DeleteTask", taskAttr(id))
	defer func() { endSpan(span, err) }()

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		listID, err := r.taskList(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := r.lockList(ctx, tx, listID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, r.q(`DELETE FROM tasks WHERE task_id = ?`), id); err != nil {
			return err
		}
		return r.compactTasks(ctx, tx, listID)
	})
	return storeErr("delete task", err)
}

// Reorder makes ids the task order of targetListID: every id gets the
// position of its index and targetListID as its list. ids must include all
// tasks already in the target; any other id is a task moving in from another
// list of the same board, and the lists it leaves are compacted in the same
// transaction.
func (r *TaskRepo) Reorder(ctx context.Context, targetListID int64, ids []int64) (err error) {
	ctx, span := startSpan(ctx, "ReorderTasks", listAttr(targetListID))
	defer func() { endSpan(span, err) }()

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		boardID, err := r.listBoard(ctx, tx, targetListID)
		if err != nil {
			return err
		}
		// Tasks only change lists under the board lock, so the sources
		// resolved here stay put until commit.
		if err := r.lockBoard(ctx, tx, boardID); err != nil {
			return err
		}
		before, err := r.taskIDs(ctx, tx, targetListID)
		if err != nil {
			return err
		}
		sources, err := r.incomingSources(ctx, tx, boardID, position.Difference(ids, before))
		if err != nil {
			return err
		}
		if err := r.lockLists(ctx, tx, append(sources, targetListID)...); err != nil {
			return err
		}

		current, err := r.taskIDs(ctx, tx, targetListID)
		if err != nil {
			return err
		}
		if err := position.CheckCovers(current, ids); err != nil {
			return orderError("orderedTaskIds", err)
		}

		if err := r.placeTasks(ctx, tx, targetListID, ids); err != nil {
			return err
		}
		for _, src := range sources {
			if err := r.compactTasks(ctx, tx, src); err != nil {
				return err
			}
		}
		return nil
	})
	return storeErr("reorder tasks", err)
}

// Move places a task at index within targetListID, clamped to the end, and
// compacts the list it left.
func (r *TaskRepo) Move(ctx context.Context, id, targetListID int64, index int) (_ *models.Task, err error) {
	ctx, span := startSpan(ctx, "MoveTask", taskAttr(id), listAttr(targetListID))
	defer func() { endSpan(span, err) }()

	if index < 0 {
		return nil, models.NewValidationError("position", "must not be negative")
	}

	var task *models.Task
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		boardID, err := r.listBoard(ctx, tx, targetListID)
		if err != nil {
			return err
		}
		if err := r.lockBoard(ctx, tx, boardID); err != nil {
			return err
		}
		sourceListID, err := r.taskList(ctx, tx, id)
		if err != nil {
			return err
		}
		sourceBoardID, err := r.listBoard(ctx, tx, sourceListID)
		if err != nil {
			return err
		}
		if sourceBoardID != boardID {
			return models.NewValidationError("listId", "list %d is on another board", targetListID)
		}
		if err := r.lockLists(ctx, tx, sourceListID, targetListID); err != nil {
			return err
		}

		current, err := r.taskIDs(ctx, tx, targetListID)
		if err != nil {
			return err
		}
		if err := r.placeTasks(ctx, tx, targetListID, position.Insert(current, id, index)); err != nil {
			return err
		}
		if sourceListID != targetListID {
			if err := r.compactTasks(ctx, tx, sourceListID); err != nil {
				return err
			}
		}

		task, err = scanTask(tx.QueryRowContext(ctx,
			r.q(`SELECT `+taskColumns+` FROM tasks WHERE task_id = ?`), id,
		))
		return err
	})
	if err != nil {
		return nil, storeErr("move task", err)
	}
	return task, nil
}

func (r *TaskRepo) placeTasks(ctx context.Context, tx *sql.Tx, listID int64, ids []int64) error {
	return r.writePlacements(ctx, tx, "task",
		`UPDATE tasks SET list_id = ?, task_order = ? WHERE task_id = ?`,
		position.Assign(ids),
		func(p position.Placement) []any { return []any{listID, p.Position, p.ID} },
	)
}

func (r *TaskRepo) taskList(ctx context.Context, tx *sql.Tx, id int64) (int64, error) {
	var listID int64
	err := tx.QueryRowContext(ctx,
		r.q(`SELECT list_id FROM tasks WHERE task_id = ?`), id,
	).Scan(&listID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.NotFound("task", id)
	}
	if err != nil {
		return 0, fmt.Errorf("task list: %w", err)
	}
	return listID, nil
}

// incomingSources resolves the current lists of tasks moving into a list on
// boardID. Unknown tasks are NotFound; tasks on another board are rejected.
// The returned list ids are sorted.
func (r *TaskRepo) incomingSources(ctx context.Context, tx *sql.Tx, boardID int64, incoming []int64) ([]int64, error) {
	if len(incoming) == 0 {
		return nil, nil
	}

	rows, err := tx.QueryContext(ctx,
		r.q(`SELECT t.task_id, t.list_id, l.board_id
		 FROM tasks t
		 INNER JOIN lists l ON l.list_id = t.list_id
		 WHERE t.task_id IN (`+placeholders(len(incoming))+`)`),
		int64sToArgs(incoming)...,
	)
	if err != nil {
		return nil, fmt.Errorf("resolve incoming tasks: %w", err)
	}

	type origin struct{ listID, boardID int64 }
	found := make(map[int64]origin, len(incoming))
	for rows.Next() {
		var taskID int64
		var o origin
		if err := rows.Scan(&taskID, &o.listID, &o.boardID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan incoming task: %w", err)
		}
		found[taskID] = o
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	var sources []int64
	for _, id := range incoming {
		o, ok := found[id]
		if !ok {
			return nil, models.NotFound("task", id)
		}
		if o.boardID != boardID {
			return nil, models.NewValidationError("orderedTaskIds", "task %d belongs to another board", id)
		}
		if _, dup := seen[o.listID]; !dup {
			seen[o.listID] = struct{}{}
			sources = append(sources, o.listID)
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources, nil
}
