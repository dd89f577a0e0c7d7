package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardRepo handles board persistence and the board aggregate read.
type BoardRepo struct {
	*conn
}

// Create inserts a board with no lists.
func (r *BoardRepo) Create(ctx context.Context, name string) (_ *models.Board, err error) {
	ctx, span := startSpan(ctx, "CreateBoard")
	defer func() { endSpan(span, err) }()

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	board := &models.Board{Name: name}
	err = r.db.QueryRowContext(ctx,
		r.q(`INSERT INTO boards (boardName) VALUES (?) RETURNING board_id`),
		name,
	).Scan(&board.ID)
	if err != nil {
		return nil, storeErr("create board", err)
	}
	return board, nil
}

// GetAll returns every board ordered by name, then id.
func (r *BoardRepo) GetAll(ctx context.Context) (_ []*models.Board, err error) {
	ctx, span := startSpan(ctx, "GetAllBoards")
	defer func() { endSpan(span, err) }()

	rows, err := r.db.QueryContext(ctx,
		`SELECT board_id, boardName FROM boards ORDER BY boardName, board_id`)
	if err != nil {
		return nil, storeErr("get boards", err)
	}
	defer rows.Close()

	boards := make([]*models.Board, 0)
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, storeErr("scan board", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("get boards", err)
	}
	return boards, nil
}

// Rename changes a board's name. Renaming to the current name succeeds.
func (r *BoardRepo) Rename(ctx context.Context, id int64, name string) (err error) {
	ctx, span := startSpan(ctx, "RenameBoard", boardAttr(id))
	defer func() { endSpan(span, err) }()

	if err := requireName("name", name); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		r.q(`UPDATE boards SET boardName = ? WHERE board_id = ?`),
		name, id,
	)
	if err != nil {
		return storeErr("rename board", err)
	}
	return storeErr("rename board", requireAffected(res, "board", id))
}

// Delete removes a board; its lists and their tasks go with it.
func (r *BoardRepo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "DeleteBoard", boardAttr(id))
	defer func() { endSpan(span, err) }()

	res, err := r.db.ExecContext(ctx, r.q(`DELETE FROM boards WHERE board_id = ?`), id)
	if err != nil {
		return storeErr("delete board", err)
	}
	return storeErr("delete board", requireAffected(res, "board", id))
}

// GetBoardDetails assembles a board, its lists ordered by (list_order,
// list_id) and each list's tasks ordered by (task_order, task_id).
func (r *BoardRepo) GetBoardDetails(ctx context.Context, id int64) (_ *models.BoardDetails, err error) {
	ctx, span := startSpan(ctx, "GetBoardDetails", boardAttr(id))
	defer func() { endSpan(span, err) }()

	var details *models.BoardDetails
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		details, err = r.readDetails(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, storeErr("get board details", err)
	}
	return details, nil
}

func (r *BoardRepo) readDetails(ctx context.Context, tx *sql.Tx, id int64) (*models.BoardDetails, error) {
	details := &models.BoardDetails{ID: id, Lists: make([]*models.ListDetails, 0)}
	err := tx.QueryRowContext(ctx,
		r.q(`SELECT boardName FROM boards WHERE board_id = ?`), id,
	).Scan(&details.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound("board", id)
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	lists, err := r.readLists(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.ListDetails, len(lists))
	for _, l := range lists {
		byID[l.ID] = l
	}
	details.Lists = lists

	tasks, err := r.readTasks(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if l, ok := byID[t.ListID]; ok {
			l.Tasks = append(l.Tasks, t)
		}
	}
	return details, nil
}

func (r *BoardRepo) readLists(ctx context.Context, tx *sql.Tx, boardID int64) ([]*models.ListDetails, error) {
	rows, err := tx.QueryContext(ctx,
		r.q(`SELECT list_id, listName, list_order
		 FROM lists
		 WHERE board_id = ?
		 ORDER BY list_order, list_id`),
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("read lists: %w", err)
	}
	defer rows.Close()

	lists := make([]*models.ListDetails, 0)
	for rows.Next() {
		l := &models.ListDetails{Tasks: make([]*models.Task, 0)}
		if err := rows.Scan(&l.ID, &l.Name, &l.Position); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// readTasks loads every task on the board in one query; callers bucket them
// by list.
func (r *BoardRepo) readTasks(ctx context.Context, tx *sql.Tx, boardID int64) ([]*models.Task, error) {
	rows, err := tx.QueryContext(ctx,
		r.q(`SELECT t.task_id, t.list_id, t.taskName, t.assignedTo, t.dueDate, t.task_order
		 FROM tasks t
		 INNER JOIN lists l ON l.list_id = t.list_id
		 WHERE l.board_id = ?
		 ORDER BY t.task_order, t.task_id`),
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
