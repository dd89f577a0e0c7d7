package app

import (
	"context"
	"database/sql"

	log "github.com/sirupsen/logrus"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	listservice "github.com/thenoetrevino/kanban/internal/services/list"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	Logger *log.Logger

	// Service layer (business logic)
	BoardService boardservice.Service
	ListService  listservice.Service
	TaskService  taskservice.Service

	closeFunc func() error
}

// New creates a new App over an existing store with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:         repo,
		Logger:       cfg.logger,
		BoardService: boardservice.NewService(repo),
		ListService:  listservice.NewService(repo),
		TaskService:  taskservice.NewService(repo),
		closeFunc:    cfg.closeFunc,
	}
}

// Open connects to the configured database, runs migrations and returns an
// App that owns the connection.
func Open(ctx context.Context, dbCfg config.DatabaseConfig, opts ...Option) (*App, error) {
	db, dialect, err := database.Open(ctx, dbCfg.Driver, dbCfg.DSN)
	if err != nil {
		return nil, err
	}
	return NewFromDB(db, dialect, append(opts,
		WithReorderConcurrency(dbCfg.ReorderConcurrency),
		withCloser(db.Close),
	)...), nil
}

// NewFromDB builds the repository over db and wraps it in an App.
func NewFromDB(db *sql.DB, dialect database.Dialect, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return New(database.NewRepository(db, dialect, cfg.repoOpts...), opts...)
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Ready reports whether the store answers.
func (a *App) Ready(ctx context.Context) error {
	return a.repo.Ping(ctx)
}

// Close releases the database connection when the App opened it.
func (a *App) Close() error {
	if a.closeFunc == nil {
		return nil
	}
	return a.closeFunc()
}
