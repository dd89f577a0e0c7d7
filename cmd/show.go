package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/export"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [board-id]",
		Short: "Print a board as markdown",
		Long: `Print a board with its lists and tasks in order. Without a board id,
print the list of boards.

Examples:
  kanban show
  kanban show 3 --style=dark --width=100
  kanban show 3 --raw > sprint.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
	cmd.Flags().String("style", "", "glamour style (dark, light, notty, ...); empty picks one for the terminal")
	cmd.Flags().Int("width", 80, "Word wrap width")
	cmd.Flags().Bool("raw", false, "Print the markdown source without rendering")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, err := cli.FromContext(ctx)
	if err != nil {
		return err
	}

	var md string
	if len(args) == 0 {
		boards, err := c.App.BoardService.GetAllBoards(ctx)
		if err != nil {
			return err
		}
		md = export.BoardsMarkdown(boards)
	} else {
		id, err := cli.ParseID(args[0])
		if err != nil {
			return err
		}
		details, err := c.App.BoardService.GetBoardDetails(ctx, id)
		if err != nil {
			return err
		}
		md = export.BoardMarkdown(details)
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}

	style, _ := cmd.Flags().GetString("style")
	width, _ := cmd.Flags().GetInt("width")
	out, err := export.Render(md, style, width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
