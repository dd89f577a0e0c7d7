package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	listservice "github.com/thenoetrevino/kanban/internal/services/list"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
)

// demoLists is the sample content created by seed, in display order.
var demoLists = []struct {
	name  string
	tasks []string
}{
	{"Todo", []string{"Fix auth bug", "Refactor UI", "Update deps"}},
	{"In Progress", []string{"Add tests", "Review PR #42"}},
	{"Done", []string{"Deploy v1.0", "Hotfix prod"}},
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo board with sample lists and tasks",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
	cmd.Flags().String("name", "Demo", "Name of the demo board")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := cli.FromContext(ctx)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")

	b, err := c.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{Name: name})
	if err != nil {
		return err
	}

	for _, dl := range demoLists {
		l, err := c.App.ListService.CreateList(ctx, listservice.CreateListRequest{BoardID: b.ID, Name: dl.name})
		if err != nil {
			return err
		}
		for _, title := range dl.tasks {
			if _, err := c.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{ListID: l.ID, Title: title}); err != nil {
				return err
			}
			c.App.Logger.WithFields(log.Fields{"list": dl.name, "task": title}).Debug("created task")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created board %d: %s\n", b.ID, b.Name)
	return nil
}
