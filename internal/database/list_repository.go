package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/position"
)

// ListRepo handles list persistence and list ordering within a board.
type ListRepo struct {
	*conn
}

// Create appends a list to the end of its board.
func (r *ListRepo) Create(ctx context.Context, boardID int64, name string) (_ *models.List, err error) {
	ctx, span := startSpan(ctx, "CreateList", boardAttr(boardID))
	defer func() { endSpan(span, err) }()

	if err := requireName("name", name); err != nil {
		return nil, err
	}

	list := &models.List{Name: name, BoardID: boardID, Tasks: []models.Task{}}
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := r.lockBoard(ctx, tx, boardID); err != nil {
			return err
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			r.q(`SELECT COUNT(*) FROM lists WHERE board_id = ?`), boardID,
		).Scan(&count); err != nil {
			return err
		}
		list.Position = position.Next(count)

		return tx.QueryRowContext(ctx,
			r.q(`INSERT INTO lists (board_id, listName, list_order) VALUES (?, ?, ?) RETURNING list_id`),
			boardID, name, list.Position,
		).Scan(&list.ID)
	})
	if err != nil {
		return nil, storeErr("create list", err)
	}
	return list, nil
}

// Rename changes a list's name.
func (r *ListRepo) Rename(ctx context.Context, id int64, name string) (err error) {
	ctx, span := startSpan(ctx, "RenameList", listAttr(id))
	defer func() { endSpan(span, err) }()

	if err := requireName("name", name); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		r.q(`UPDATE lists SET listName = ? WHERE list_id = ?`),
		name, id,
	)
	if err != nil {
		return storeErr("rename list", err)
	}
	return storeErr("rename list", requireAffected(res, "list", id))
}

// Delete removes a list and its tasks, then closes the gap it leaves in the
// board's list positions.
func (r *ListRepo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "DeleteList", listAttr(id))
	defer func() { endSpan(span, err) }()

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		boardID, err := r.listBoard(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := r.lockBoard(ctx, tx, boardID); err != nil {
			return err
		}
		if err := r.lockLists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, r.q(`DELETE FROM lists WHERE list_id = ?`), id); err != nil {
			return err
		}
		return r.compactLists(ctx, tx, boardID)
	})
	return storeErr("delete list", err)
}

// Reorder assigns each list in ids the position of its index. ids must name
// every list of the board exactly once.
func (r *ListRepo) Reorder(ctx context.Context, boardID int64, ids []int64) (err error) {
	ctx, span := startSpan(ctx, "ReorderLists", boardAttr(boardID))
	defer func() { endSpan(span, err) }()

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := r.lockBoard(ctx, tx, boardID); err != nil {
			return err
		}
		current, err := r.listIDs(ctx, tx, boardID)
		if err != nil {
			return err
		}
		if err := position.CheckPermutation(current, ids); err != nil {
			return orderError("orderedListIds", err)
		}

		return r.writePlacements(ctx, tx, "list",
			`UPDATE lists SET list_order = ? WHERE list_id = ? AND board_id = ?`,
			position.Assign(ids),
			func(p position.Placement) []any { return []any{p.Position, p.ID, boardID} },
		)
	})
	return storeErr("reorder lists", err)
}
