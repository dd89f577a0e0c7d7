// Package export renders boards as markdown for terminal output.
package export

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/kanban/internal/models"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}

// BoardMarkdown writes a board as a heading per list and a checklist item
// per task, both in position order.
func BoardMarkdown(b *models.BoardDetails) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", escape(b.Name))

	if len(b.Lists) == 0 {
		sb.WriteString("\n_No lists_\n")
		return sb.String()
	}

	for _, l := range b.Lists {
		fmt.Fprintf(&sb, "\n## %s (%d)\n\n", escape(l.Name), len(l.Tasks))
		if len(l.Tasks) == 0 {
			sb.WriteString("_No tasks_\n")
			continue
		}
		for _, t := range l.Tasks {
			fmt.Fprintf(&sb, "- [ ] %s%s\n", escape(t.Title), taskMeta(t))
		}
	}
	return sb.String()
}

func taskMeta(t *models.Task) string {
	var meta []string
	if t.AssignedTo != nil && *t.AssignedTo != "" {
		meta = append(meta, "@"+escape(*t.AssignedTo))
	}
	if t.DueDate != nil {
		meta = append(meta, "due "+t.DueDate.String())
	}
	if len(meta) == 0 {
		return ""
	}
	return " (" + strings.Join(meta, ", ") + ")"
}

// BoardsMarkdown writes the board summaries as a table.
func BoardsMarkdown(boards []*models.Board) string {
	if len(boards) == 0 {
		return "_No boards_\n"
	}

	var sb strings.Builder
	sb.WriteString("| ID | Board |\n|---:|---|\n")
	for _, b := range boards {
		fmt.Fprintf(&sb, "| %d | %s |\n", b.ID, escape(b.Name))
	}
	return sb.String()
}

type rendererKey struct {
	style string
	width int
}

// Cache glamour renderers; building one is expensive.
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	k := rendererKey{style: style, width: width}
	if cached, ok := rendererCache.Load(k); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}

	rendererCache.Store(k, renderer)
	return renderer, nil
}

// Render formats markdown for the terminal. An empty style picks dark or
// light from the terminal background.
func Render(md, style string, width int) (string, error) {
	renderer, err := getRenderer(style, width)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
