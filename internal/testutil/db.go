package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
)

// SetupTestRepo opens a migrated in-memory SQLite store that is closed when
// the test ends.
func SetupTestRepo(t testing.TB) *database.Repository {
	t.Helper()
	db, dialect, err := database.Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db, dialect)
}

// CreateTestBoard inserts a board and returns its ID
func CreateTestBoard(t testing.TB, repo database.DataStore, name string) int64 {
	t.Helper()
	b, err := repo.CreateBoard(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return b.ID
}

// CreateTestList appends a list to a board and returns its ID
func CreateTestList(t testing.TB, repo database.DataStore, boardID int64, name string) int64 {
	t.Helper()
	l, err := repo.CreateList(context.Background(), boardID, name)
	if err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}
	return l.ID
}

// CreateTestTask appends a task to a list and returns its ID
func CreateTestTask(t testing.TB, repo database.DataStore, listID int64, title string) int64 {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), listID, models.TaskFields{Title: &title})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// SeedBoard creates a board with the named lists, each holding tasksPerList
// tasks, and returns the resulting details.
func SeedBoard(t testing.TB, repo database.DataStore, name string, lists []string, tasksPerList int) *models.BoardDetails {
	t.Helper()
	boardID := CreateTestBoard(t, repo, name)
	for _, listName := range lists {
		listID := CreateTestList(t, repo, boardID, listName)
		for i := 0; i < tasksPerList; i++ {
			CreateTestTask(t, repo, listID, listName+" task")
		}
	}
	details, err := repo.GetBoardDetails(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to read seeded board: %v", err)
	}
	return details
}
