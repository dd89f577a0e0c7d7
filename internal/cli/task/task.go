// Package task holds all cli commands related to tasks
//
// e.g., kanban task ...
package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
	"github.com/thenoetrevino/kanban/internal/user"
)

// TaskCmd returns the task command with its subcommands
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

func describe(t *models.Task) string {
	s := fmt.Sprintf("Task %d: %s (list %d, position %d)", t.ID, t.Title, t.ListID, t.Position)
	if t.AssignedTo != nil {
		s += "\n  Assigned to: " + *t.AssignedTo
	}
	if t.DueDate != nil {
		s += "\n  Due: " + t.DueDate.String()
	}
	return s
}

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a new task to a list",
		Long: `Append a new task to the end of a list.

Examples:
  kanban task create --list=1 --text="Fix bug"

  # With assignee and due date
  kanban task create --list=1 --text="Write docs" --assignee=sam --due=2024-05-01

  # Assigned to yourself
  kanban task create --list=1 --text="Review PR" --mine

  # Quiet mode for bash capture
  TASK_ID=$(kanban task create --list=1 --text="Fix bug" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().Int64("list", 0, "List ID (required)")
	cmd.Flags().String("text", "", "Task text (required)")
	cmd.Flags().String("assignee", "", "Person the task is assigned to")
	cmd.Flags().Bool("mine", false, "Assign the task to the current user")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("assignee", "mine")
	cli.RequireFlag(cmd, "list")
	cli.RequireFlag(cmd, "text")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	listID, _ := cmd.Flags().GetInt64("list")
	text, _ := cmd.Flags().GetString("text")
	assignee := cli.OptionalString(cmd, "assignee")
	if mine, _ := cmd.Flags().GetBool("mine"); mine {
		name := user.CurrentUsername()
		assignee = &name
	}

	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	t, err := c.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		ListID:     listID,
		Title:      text,
		AssignedTo: assignee,
		DueDate:    cli.OptionalString(cmd, "due"),
	})
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(t, describe(t))
}

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	t, err := c.App.TaskService.GetTask(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(t, describe(t))
}

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's text, assignee or due date",
		Long: `Update only the fields given. An empty --assignee or --due clears it.

Examples:
  kanban task update 7 --text="Fix the other bug"
  kanban task update 7 --due=""
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
	cmd.Flags().String("text", "", "New task text")
	cmd.Flags().String("assignee", "", "New assignee; empty clears it")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD); empty clears it")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	t, err := c.App.TaskService.UpdateTask(ctx, taskservice.UpdateTaskRequest{
		TaskID:     id,
		Title:      cli.OptionalString(cmd, "text"),
		AssignedTo: cli.OptionalString(cmd, "assignee"),
		DueDate:    cli.OptionalString(cmd, "due"),
	})
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(t, describe(t))
}

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := c.App.TaskService.DeleteTask(ctx, id); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]int64{"task_id": id}, fmt.Sprintf("Deleted task %d", id))
}

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to a position in a list",
		Long: `Move a task to a position in a list of the same board. Positions
past the end of the list append.

Examples:
  # Move to the top of list 2
  kanban task move 7 --list=2 --position=0
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}
	cmd.Flags().Int64("list", 0, "Target list ID (required)")
	cmd.Flags().Int("position", 0, "Zero-based target position")
	cli.RequireFlag(cmd, "list")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	listID, _ := cmd.Flags().GetInt64("list")
	position, _ := cmd.Flags().GetInt("position")

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	t, err := c.App.TaskService.MoveTask(ctx, taskservice.MoveTaskRequest{TaskID: id, ListID: listID, Position: position})
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(t, describe(t))
}

// ReorderCmd returns the task reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the order of a list's tasks",
		Long: `Set the order of a list's tasks. The ids must include every task
of the list; ids of tasks in other lists of the same board move them in.

Examples:
  kanban task reorder --list=2 --ids=9,4,5
`,
		RunE: runReorder,
	}
	cmd.Flags().Int64("list", 0, "List ID (required)")
	cmd.Flags().String("ids", "", "Comma-separated task IDs in their new order (required)")
	cli.RequireFlag(cmd, "list")
	cli.RequireFlag(cmd, "ids")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	listID, _ := cmd.Flags().GetInt64("list")
	raw, _ := cmd.Flags().GetString("ids")

	ids, err := cli.ParseIDList(raw)
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := c.App.TaskService.ReorderTasks(ctx, taskservice.ReorderTasksRequest{ListID: listID, TaskIDs: ids}); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]any{"list_id": listID, "orderedTaskIds": ids}, "Task order updated.")
}
