// Package cli holds the shared plumbing of the local management commands:
// the application context, output formatting and exit codes.
package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/kanban/internal/app"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// New wraps an opened App.
func New(a *app.App) *CLI {
	return &CLI{App: a}
}

// Close releases the App's database connection.
func (c *CLI) Close() error {
	return c.App.Close()
}

type cliKey struct{}

// WithCLI stores c in ctx for the subcommands.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// FromContext returns the CLI stored by WithCLI.
func FromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, errors.New("cli not initialized")
	}
	return c, nil
}
