package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestRepo opens a migrated in-memory SQLite store.
func setupTestRepo(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	db, dialect, err := Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, dialect, opts...)
}

func strPtr(s string) *string { return &s }

func mustBoard(t *testing.T, repo *Repository, name string) *models.Board {
	t.Helper()
	b, err := repo.CreateBoard(context.Background(), name)
	require.NoError(t, err)
	return b
}

func mustList(t *testing.T, repo *Repository, boardID int64, name string) *models.List {
	t.Helper()
	l, err := repo.CreateList(context.Background(), boardID, name)
	require.NoError(t, err)
	return l
}

func mustTask(t *testing.T, repo *Repository, listID int64, title string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), listID, models.TaskFields{Title: strPtr(title)})
	require.NoError(t, err)
	return task
}

func mustDetails(t *testing.T, repo *Repository, boardID int64) *models.BoardDetails {
	t.Helper()
	d, err := repo.GetBoardDetails(context.Background(), boardID)
	require.NoError(t, err)
	return d
}

// listPositions returns the list_order values of a board in read order.
func listPositions(d *models.BoardDetails) []int {
	out := make([]int, 0, len(d.Lists))
	for _, l := range d.Lists {
		out = append(out, l.Position)
	}
	return out
}

func taskPositions(l *models.ListDetails) []int {
	out := make([]int, 0, len(l.Tasks))
	for _, task := range l.Tasks {
		out = append(out, task.Position)
	}
	return out
}
