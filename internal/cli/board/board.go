// Package board holds all cli commands related to boards
//
// e.g., kanban board ...
package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// BoardCmd returns the board command with its subcommands
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new, empty board.

Examples:
  kanban board create --name="Sprint 1"

  # Quiet mode for bash capture
  BOARD_ID=$(kanban board create --name="Sprint 1" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	cli.RequireFlag(cmd, "name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	name, _ := cmd.Flags().GetString("name")

	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	b, err := c.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{Name: name})
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(b, fmt.Sprintf("Created board %d: %s", b.ID, b.Name))
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	c, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	boards, err := c.App.BoardService.GetAllBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, b := range boards {
			fmt.Fprintln(formatter.Out, b.ID)
		}
		return nil
	}

	var sb strings.Builder
	if len(boards) == 0 {
		sb.WriteString("No boards")
	}
	for i, b := range boards {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d\t%s", b.ID, b.Name)
	}
	return formatter.Success(boards, sb.String())
}

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <board-id>",
		Short: "Rename a board",
		Args:  cobra.ExactArgs(1),
		RunE:  runRename,
	}
	cmd.Flags().String("name", "", "New board name (required)")
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

	if err := c.App.BoardService.RenameBoard(ctx, boardservice.RenameBoardRequest{ID: id, Name: name}); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]int64{"board_id": id}, fmt.Sprintf("Renamed board %d", id))
}

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board with all its lists and tasks",
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

	if err := c.App.BoardService.DeleteBoard(ctx, id); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(map[string]int64{"board_id": id}, fmt.Sprintf("Deleted board %d", id))
}
