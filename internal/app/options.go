package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/thenoetrevino/kanban/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger    *log.Logger
	repoOpts  []database.Option
	closeFunc func() error
}

// WithLogger sets the logger for the application
func WithLogger(logger *log.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithReorderConcurrency bounds the fan-out of bulk reorders
func WithReorderConcurrency(n int) Option {
	return func(cfg *appConfig) {
		cfg.repoOpts = append(cfg.repoOpts, database.WithReorderConcurrency(n))
	}
}

// withCloser registers a function run by App.Close
func withCloser(fn func() error) Option {
	return func(cfg *appConfig) {
		cfg.closeFunc = fn
	}
}
