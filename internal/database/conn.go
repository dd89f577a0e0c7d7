package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/position"
)

// DefaultReorderConcurrency bounds the per-id writes of a bulk reorder.
const DefaultReorderConcurrency = 8

// conn is the state shared by every repository.
type conn struct {
	db           *sql.DB
	dialect      Dialect
	reorderLimit int
}

// q rebinds a "?" query for the connected dialect.
func (c *conn) q(query string) string {
	return c.dialect.Rebind(query)
}

// lockBoard confirms the board exists and, on Postgres, holds its row lock
// until the transaction ends.
func (c *conn) lockBoard(ctx context.Context, tx *sql.Tx, boardID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx,
		c.q(`SELECT board_id FROM boards WHERE board_id = ?`+c.dialect.LockClause()),
		boardID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFound("board", boardID)
	}
	if err != nil {
		return fmt.Errorf("lock board: %w", err)
	}
	return nil
}

// lockList confirms the list exists, locks it and returns its board.
func (c *conn) lockList(ctx context.Context, tx *sql.Tx, listID int64) (int64, error) {
	var boardID int64
	err := tx.QueryRowContext(ctx,
		c.q(`SELECT board_id FROM lists WHERE list_id = ?`+c.dialect.LockClause()),
		listID,
	).Scan(&boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.NotFound("list", listID)
	}
	if err != nil {
		return 0, fmt.Errorf("lock list: %w", err)
	}
	return boardID, nil
}

// listBoard returns the board of a list without locking it. A list never
// changes boards, so the answer stays valid for the transaction.
func (c *conn) listBoard(ctx context.Context, q querier, listID int64) (int64, error) {
	var boardID int64
	err := q.QueryRowContext(ctx,
		c.q(`SELECT board_id FROM lists WHERE list_id = ?`), listID,
	).Scan(&boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.NotFound("list", listID)
	}
	if err != nil {
		return 0, fmt.Errorf("list board: %w", err)
	}
	return boardID, nil
}

// lockLists locks every list in listIDs in ascending id order. Writers that
// touch more than one list hold the board lock first, then take list locks
// this way.
func (c *conn) lockLists(ctx context.Context, tx *sql.Tx, listIDs ...int64) error {
	ids := slices.Clone(listIDs)
	slices.Sort(ids)
	for _, id := range slices.Compact(ids) {
		if _, err := c.lockList(ctx, tx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *conn) listIDs(ctx context.Context, q querier, boardID int64) ([]int64, error) {
	ids, err := queryIDs(ctx, q,
		c.q(`SELECT list_id FROM lists WHERE board_id = ? ORDER BY list_order, list_id`),
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}
	return ids, nil
}

func (c *conn) taskIDs(ctx context.Context, q querier, listID int64) ([]int64, error) {
	ids, err := queryIDs(ctx, q,
		c.q(`SELECT task_id FROM tasks WHERE list_id = ? ORDER BY task_order, task_id`),
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("task ids: %w", err)
	}
	return ids, nil
}

// writePlacements fans out one UPDATE per placement on tx and waits for all
// of them. args builds the statement arguments for a placement. Any failure,
// including an update that matched no row, fails the whole batch; the caller
// rolls the transaction back.
func (c *conn) writePlacements(
	ctx context.Context,
	tx *sql.Tx,
	entity, query string,
	placements []position.Placement,
	args func(position.Placement) []any,
) error {
	if len(placements) == 0 {
		return nil
	}
	stmt := c.q(query)

	limit := c.reorderLimit
	if limit <= 0 {
		limit = DefaultReorderConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, p := range placements {
		g.Go(func() error {
			res, err := tx.ExecContext(gctx, stmt, args(p)...)
			if err != nil {
				return fmt.Errorf("place %s %d: %w", entity, p.ID, err)
			}
			return requireAffected(res, entity, p.ID)
		})
	}
	return g.Wait()
}

// compactLists rewrites a board's list positions to {0..k-1}, keeping order.
func (c *conn) compactLists(ctx context.Context, tx *sql.Tx, boardID int64) error {
	ids, err := c.listIDs(ctx, tx, boardID)
	if err != nil {
		return err
	}
	return c.writePlacements(ctx, tx, "list",
		`UPDATE lists SET list_order = ? WHERE list_id = ?`,
		position.Assign(ids),
		func(p position.Placement) []any { return []any{p.Position, p.ID} },
	)
}

// compactTasks rewrites a list's task positions to {0..m-1}, keeping order.
func (c *conn) compactTasks(ctx context.Context, tx *sql.Tx, listID int64) error {
	ids, err := c.taskIDs(ctx, tx, listID)
	if err != nil {
		return err
	}
	return c.writePlacements(ctx, tx, "task",
		`UPDATE tasks SET task_order = ? WHERE task_id = ?`,
		position.Assign(ids),
		func(p position.Placement) []any { return []any{p.Position, p.ID} },
	)
}

// requireName rejects names that are empty after trimming.
func requireName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError(field, "is required")
	}
	return nil
}

// orderError converts a position check failure into a ValidationError.
func orderError(field string, err error) error {
	return models.NewValidationError(field, "%v", err)
}
