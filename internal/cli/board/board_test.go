package board

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func setupCLI(t *testing.T) (context.Context, *app.App) {
	t.Helper()
	a := app.New(testutil.SetupTestRepo(t))
	return cli.WithCLI(context.Background(), cli.New(a)), a
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, ctx, BoardCmd(), args...)
}

func TestCreateBoard(t *testing.T) {
	ctx, a := setupCLI(t)

	out, _, err := execute(t, ctx, "create", "--name", "Sprint 1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out, "Sprint 1") {
		t.Errorf("Expected board name in output, got %q", out)
	}

	boards, err := a.BoardService.GetAllBoards(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(boards) != 1 || boards[0].Name != "Sprint 1" {
		t.Errorf("Unexpected boards: %+v", boards)
	}
}

func TestCreateBoardQuiet(t *testing.T) {
	ctx, _ := setupCLI(t)

	out, _, err := execute(t, ctx, "create", "--name", "Ops", "--quiet")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id, err := cli.ParseID(out)
	if err != nil {
		t.Fatalf("Expected an id, got %q", out)
	}
	if id <= 0 {
		t.Errorf("Expected positive id, got %d", id)
	}
}

func TestCreateBoardRejectsBlankName(t *testing.T) {
	ctx, _ := setupCLI(t)

	_, errOut, err := execute(t, ctx, "create", "--name", "   ")
	if code := cli.ExitCodeFor(err); code != cli.ExitValidation {
		t.Errorf("Expected exit code %d, got %d (%v)", cli.ExitValidation, code, err)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Errorf("Expected error on stderr, got %q", errOut)
	}
}

func TestListBoardsJSON(t *testing.T) {
	ctx, _ := setupCLI(t)
	for _, name := range []string{"beta", "alpha"} {
		if _, _, err := execute(t, ctx, "create", "--name", name); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := execute(t, ctx, "list", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var boards []struct {
		Name string `json:"boardName"`
	}
	if result := testutil.ParseJSON(t, out, &boards); !result.Success {
		t.Errorf("Expected success, got %q", out)
	}
	if len(boards) != 2 || boards[0].Name != "alpha" || boards[1].Name != "beta" {
		t.Errorf("Expected boards ordered by name, got %+v", boards)
	}
}

func TestRenameAndDeleteBoard(t *testing.T) {
	ctx, a := setupCLI(t)
	id := testutil.CreateTestBoard(t, a.Repo(), "old")
	idArg := strconv.FormatInt(id, 10)

	if _, _, err := execute(t, ctx, "rename", idArg, "--name", "new"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	details, err := a.BoardService.GetBoardDetails(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if details.Name != "new" {
		t.Errorf("Expected renamed board, got %q", details.Name)
	}

	if _, _, err := execute(t, ctx, "delete", idArg); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, _, err = execute(t, ctx, "delete", idArg)
	if code := cli.ExitCodeFor(err); code != cli.ExitNotFound {
		t.Errorf("Expected exit code %d on second delete, got %d", cli.ExitNotFound, code)
	}
}

func TestBadBoardID(t *testing.T) {
	ctx, _ := setupCLI(t)

	_, _, err := execute(t, ctx, "delete", "first")
	if code := cli.ExitCodeFor(err); code != cli.ExitUsage {
		t.Errorf("Expected exit code %d, got %d", cli.ExitUsage, code)
	}
}
