package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/position"
)

// setupPostgresRepo opens the database named by KANBAN_TEST_POSTGRES_DSN,
// skipping when it is unset.
func setupPostgresRepo(t *testing.T) *Repository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	dsn := os.Getenv("KANBAN_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("KANBAN_TEST_POSTGRES_DSN not set")
	}

	db, dialect, err := Open(context.Background(), "pgx", dsn)
	require.NoError(t, err, "open postgres")
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, dialect)
}

// crossTraffic runs crossing moves, cross-list reorders and appends against
// two lists at once and checks that both stay dense and nothing is lost.
func crossTraffic(t *testing.T, repo *Repository) {
	ctx := context.Background()
	board := mustBoard(t, repo, "traffic")
	left := mustList(t, repo, board.ID, "left")
	right := mustList(t, repo, board.ID, "right")

	const perList, rounds = 6, 8
	var leftTasks, rightTasks []int64
	for i := 0; i < perList; i++ {
		leftTasks = append(leftTasks, mustTask(t, repo, left.ID, fmt.Sprintf("l%d", i)).ID)
		rightTasks = append(rightTasks, mustTask(t, repo, right.ID, fmt.Sprintf("r%d", i)).ID)
	}

	// pull moves id into listID through a full reorder of that list. A
	// concurrent change to the list makes the order stale, which is rejected.
	pull := func(listID, id int64) error {
		d, err := repo.GetBoardDetails(ctx, board.ID)
		if err != nil {
			return err
		}
		err = repo.ReorderTasks(ctx, listID, position.Insert(d.FindList(listID).TaskIDs(), id, 0))
		if errors.Is(err, models.ErrValidation) {
			return nil
		}
		return err
	}

	var g errgroup.Group
	for i := 0; i < rounds; i++ {
		l, r := leftTasks[i%perList], rightTasks[i%perList]
		title := fmt.Sprintf("new%d", i)
		g.Go(func() error {
			_, err := repo.MoveTask(ctx, l, right.ID, 0)
			return err
		})
		g.Go(func() error {
			_, err := repo.MoveTask(ctx, r, left.ID, 0)
			return err
		})
		g.Go(func() error { return pull(left.ID, rightTasks[(i+1)%perList]) })
		g.Go(func() error {
			_, err := repo.CreateTask(ctx, left.ID, models.TaskFields{Title: strPtr(title)})
			return err
		})
		g.Go(func() error {
			_, err := repo.CreateTask(ctx, right.ID, models.TaskFields{Title: strPtr(title)})
			return err
		})
	}
	require.NoError(t, g.Wait())

	d := mustDetails(t, repo, board.ID)
	total := 0
	for _, l := range d.Lists {
		assert.True(t, position.IsDense(taskPositions(l)), "list %q positions %v", l.Name, taskPositions(l))
		total += len(l.Tasks)
	}
	assert.Equal(t, 2*perList+2*rounds, total)
}

func TestCrossTrafficKeepsListsDense(t *testing.T) {
	crossTraffic(t, setupTestRepo(t))
}

func TestCrossTrafficKeepsListsDensePostgres(t *testing.T) {
	crossTraffic(t, setupPostgresRepo(t))
}
