// Package list holds all cli commands related to lists
//
// e.g., kanban list ...
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	listservice "github.com/thenoetrevino/kanban/internal/services/list"
)

// ListCmd returns the list command with its subcommands
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage the lists of a board",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a new list to a board",
		Long: `Append a new list to the end of a board.

Examples:
  kanban list create --board=1 --name="Todo"

  # Quiet mode for bash capture
  LIST_ID=$(kanban list create --board=1 --name="Doing" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().Int64("board", 0, "Board ID (required)")
	cmd.Flags().String("name", "", "List name (required)")
	cli.RequireFlag(cmd, "board")
	cli.RequireFlag(cmd, "name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	boardID, _ := cmd.Flags().GetInt64("board")
	name, _ := cmd.Flags().GetString("name")

	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	l, err := c.App.ListService.CreateList(ctx, listservice.CreateListRequest{BoardID: boardID, Name: name})
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(l, fmt.Sprintf("Created list %d: %s (position %d)", l.ID, l.Name, l.Position))
}

// RenameCmd returns the list rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <list-id>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(1),
		RunE:  runRename,
	}
	cmd.Flags().String("name", "", "New list name (required)")
	cli.RequireFlag(cmd, "name")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	name, _ := cmd.Flags().GetString("name")

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := c.App.ListService.RenameList(ctx, listservice.RenameListRequest{ID: id, Name: name}); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]int64{"list_id": id}, fmt.Sprintf("Renamed list %d", id))
}

// DeleteCmd returns the list delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list with all its tasks",
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

	if err := c.App.ListService.DeleteList(ctx, id); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]int64{"list_id": id}, fmt.Sprintf("Deleted list %d", id))
}

// ReorderCmd returns the list reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the order of a board's lists",
		Long: `Set the order of a board's lists. The ids must name every list of
the board exactly once.

Examples:
  kanban list reorder --board=1 --ids=3,1,2
`,
		RunE: runReorder,
	}
	cmd.Flags().Int64("board", 0, "Board ID (required)")
	cmd.Flags().String("ids", "", "Comma-separated list IDs in their new order (required)")
	cli.RequireFlag(cmd, "board")
	cli.RequireFlag(cmd, "ids")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	boardID, _ := cmd.Flags().GetInt64("board")
	raw, _ := cmd.Flags().GetString("ids")

	ids, err := cli.ParseIDList(raw)
	if err != nil {
		return formatter.Fail(err)
	}
	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := c.App.ListService.ReorderLists(ctx, listservice.ReorderListsRequest{BoardID: boardID, ListIDs: ids}); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]any{"board_id": boardID, "orderedListIds": ids}, "List order updated.")
}
